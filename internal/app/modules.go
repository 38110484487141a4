package app

import (
	"fmt"
	"sort"

	"github.com/vk/modslots/internal/loader"
	"github.com/vk/modslots/modules/examplemod"
	"github.com/vk/modslots/modules/sharedhooks"
)

// coreExtensions is the list of all Go extensions compiled into the modslots
// binary, selectable by name.
var coreExtensions = map[string]func() loader.Extension{
	"examplemod":  func() loader.Extension { return examplemod.New() },
	"sharedhooks": func() loader.Extension { return sharedhooks.New() },
}

// ExtensionNames lists the selectable built-in extensions.
func ExtensionNames() []string {
	out := make([]string, 0, len(coreExtensions))
	for name := range coreExtensions {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func extensionsByName(names []string) ([]loader.Extension, error) {
	out := make([]loader.Extension, 0, len(names))
	for _, name := range names {
		mk, ok := coreExtensions[name]
		if !ok {
			return nil, fmt.Errorf("unknown extension %q, available: %v", name, ExtensionNames())
		}
		out = append(out, mk())
	}
	return out, nil
}
