package settings

import (
	"fmt"
	"slices"

	"github.com/atlanticdynamic/autodgm/internal/fancy"
	"github.com/charmbracelet/lipgloss/tree"
)

// BundledSetting is the ordered list of settings applied on one configuration page of a
// competition. It cannot be changed after construction.
type BundledSetting struct {
	name     string
	subPath  string
	id       string
	settings []AtomicSetting
}

// NewBundledSetting creates a bundle for the page subPath of the competition id.
func NewBundledSetting(name, subPath, id string, settings ...AtomicSetting) BundledSetting {
	return BundledSetting{
		name:     name,
		subPath:  subPath,
		id:       id,
		settings: slices.Clone(settings),
	}
}

// Name returns the display name of the page
func (b BundledSetting) Name() string {
	return b.name
}

// SubPath returns the page selector
func (b BundledSetting) SubPath() string {
	return b.subPath
}

// ID returns the competition id
func (b BundledSetting) ID() string {
	return b.id
}

// Settings returns a copy of the settings in the order they are applied.
func (b BundledSetting) Settings() []AtomicSetting {
	return slices.Clone(b.settings)
}

// Len returns the number of settings
func (b BundledSetting) Len() int {
	return len(b.settings)
}

// Path returns the query path of the page.
func (b BundledSetting) Path() string {
	return fmt.Sprintf("u=%s&ID=%s", b.subPath, b.id)
}

// String returns the name and path of the bundle
func (b BundledSetting) String() string {
	return fmt.Sprintf("%s (%s)", b.name, b.Path())
}

// ToTree returns a tree representation of the bundle
func (b BundledSetting) ToTree() *tree.Tree {
	t := fancy.BundleTree(b.name, b.Path())
	for i, s := range b.settings {
		t.Child(fancy.SettingText(fmt.Sprintf("%d. %s", i+1, s)))
	}
	return t
}
