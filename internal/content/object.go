package content

import (
	"fmt"

	"github.com/vk/modslots/internal/assets"
	"github.com/vk/modslots/internal/hooks"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Meta is the registration state stamped onto every registered object.
// Embed it in a content type to satisfy Object.
type Meta struct {
	Name        string
	Owner       string
	Slot        int
	DisplayName string
	Texture     assets.Handle

	// Assets holds secondary bindings such as "highlight" or "block".
	Assets map[string]assets.Handle

	// Properties holds free-form typed values declared by manifests.
	// cty.NilVal when absent.
	Properties cty.Value

	registered bool
}

// Base returns m itself; it lets content types embed Meta and satisfy Object.
func (m *Meta) Base() *Meta { return m }

// Registered reports whether the object was stamped by a registration.
func (m *Meta) Registered() bool { return m.registered }

// Stamp records the registration identity. A Meta is stamped once; the slot
// is immutable afterwards.
func (m *Meta) Stamp(owner, name string, slot int) error {
	if m.registered {
		return fmt.Errorf("object is already registered as %s:%s (slot %d)", m.Owner, m.Name, m.Slot)
	}
	m.Owner, m.Name, m.Slot = owner, name, slot
	m.registered = true
	return nil
}

// FullName is "<Owner>:<Name>".
func (m *Meta) FullName() string {
	return hooks.Key(m.Owner, m.Name)
}

// Asset returns the secondary binding registered under key.
func (m *Meta) Asset(key string) (assets.Handle, bool) {
	h, ok := m.Assets[key]
	return h, ok
}

// Label returns the display name, falling back to the registration name.
func (m *Meta) Label() string {
	if m.DisplayName != "" {
		return m.DisplayName
	}
	return m.Name
}

// Property decodes the named property into target, which must be a pointer
// to a type gocty can convert into. It reports false when the property is absent.
func (m *Meta) Property(name string, target any) (bool, error) {
	if m.Properties.IsNull() || !m.Properties.IsKnown() {
		return false, nil
	}
	ty := m.Properties.Type()
	if !(ty.IsObjectType() && ty.HasAttribute(name)) && !ty.IsMapType() {
		return false, nil
	}
	var v cty.Value
	if ty.IsMapType() {
		if !m.Properties.HasIndex(cty.StringVal(name)).True() {
			return false, nil
		}
		v = m.Properties.Index(cty.StringVal(name))
	} else {
		v = m.Properties.GetAttr(name)
	}
	if err := gocty.FromCtyValue(v, target); err != nil {
		return true, fmt.Errorf("property %q of %s: %w", name, m.FullName(), err)
	}
	return true, nil
}

// Object is implemented by every registrable content value.
type Object interface {
	Base() *Meta
}

// Hook is implemented by global hook objects. HookType is the stable token
// of the implementation type, used to decide shared dispatch.
type Hook interface {
	Object
	HookType() hooks.TypeToken
}
