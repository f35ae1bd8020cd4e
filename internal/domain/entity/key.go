package entity

// Key identifies a logical logging source. Keys are compared by pointer
// identity: two keys with the same name are still different keys.
type Key struct {
	name        string
	description string
	described   bool
}

// KeyLevel pairs a key with a level for batch registry operations
type KeyLevel struct {
	Key   *Key
	Level Level
}

// NewKey creates a key labelled by name
func NewKey(name string) *Key {
	return &Key{name: name}
}

// NewDescribedKey creates a key labelled by description
func NewDescribedKey(description string) *Key {
	return &Key{description: description, described: true}
}

// NewKeyWithDescription creates a key carrying both labels.
// The description is used for display.
func NewKeyWithDescription(name, description string) *Key {
	return &Key{name: name, description: description, described: true}
}

// Name returns the key name
func (k *Key) Name() string {
	if k == nil {
		return ""
	}
	return k.name
}

// Description returns the key description and whether one was supplied
func (k *Key) Description() (string, bool) {
	if k == nil {
		return "", false
	}
	return k.description, k.described
}

// Display returns the description if present, else the name
func (k *Key) Display() string {
	if k == nil {
		return "<nil>"
	}
	if k.described {
		return k.description
	}
	return k.name
}

// String implements fmt.Stringer
func (k *Key) String() string {
	return k.Display()
}
