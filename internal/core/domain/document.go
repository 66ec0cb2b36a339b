package domain

// Keys used by the yCard format.
const (
	KeyPeople   = "people"
	KeyUID      = "uid"
	KeyName     = "name"
	KeySurname  = "surname"
	KeyEmail    = "email"
	KeyUsername = "username"
	KeyTitle    = "title"
	KeyOrg      = "org"
	KeyPhone    = "phone"
	KeyAddress  = "address"
)

// RequiredFields lists the mandatory person fields in the order they are checked.
// The same order applies to validation and to the save path.
var RequiredFields = []string{KeyUID, KeyName, KeySurname, KeyEmail}

// Document is the root value produced by parsing a yCard text.
type Document struct {
	// Root is the normalised top-level node. It is the missing node for empty input.
	Root *Node
}

// NewDocument wraps a root node. A nil root is treated as missing.
func NewDocument(root *Node) *Document {
	if root == nil {
		root = Missing()
	}
	return &Document{Root: root}
}

// People returns the node bound to the people key.
func (d *Document) People() *Node {
	if d == nil {
		return Missing()
	}
	return d.Root.Get(KeyPeople)
}

// Interface returns the document as plain Go values.
func (d *Document) Interface() any {
	if d == nil {
		return nil
	}
	return d.Root.Interface()
}

// PersonRecord is the typed view of one contact.
type PersonRecord struct {
	UID      string           `json:"uid"`
	Name     string           `json:"name"`
	Surname  string           `json:"surname"`
	Email    string           `json:"email"`
	Username string           `json:"username,omitempty"`
	Title    string           `json:"title,omitempty"`
	Org      string           `json:"org,omitempty"`
	Phone    []map[string]any `json:"phone,omitempty"`
	Address  map[string]any   `json:"address,omitempty"`
}

// DisplayName returns "Name Surname".
func (p PersonRecord) DisplayName() string {
	if p.Surname == "" {
		return p.Name
	}
	return p.Name + " " + p.Surname
}

// Records converts the people sequence into typed records.
// It does not validate; callers run the rules first. Entries that are not
// mappings yield empty records so indices stay aligned.
func (d *Document) Records() []PersonRecord {
	people := d.People()
	if !people.IsSequence() {
		return nil
	}
	out := make([]PersonRecord, 0, len(people.Items))
	for _, item := range people.Items {
		out = append(out, recordFromNode(item))
	}
	return out
}

func recordFromNode(n *Node) PersonRecord {
	rec := PersonRecord{
		UID:      n.Get(KeyUID).String(),
		Name:     n.Get(KeyName).String(),
		Surname:  n.Get(KeySurname).String(),
		Email:    n.Get(KeyEmail).String(),
		Username: n.Get(KeyUsername).String(),
		Title:    n.Get(KeyTitle).String(),
		Org:      n.Get(KeyOrg).String(),
	}

	if phone := n.Get(KeyPhone); phone.IsSequence() {
		rec.Phone = make([]map[string]any, 0, len(phone.Items))
		for _, p := range phone.Items {
			if m, ok := p.Interface().(map[string]any); ok {
				rec.Phone = append(rec.Phone, m)
			}
		}
	}

	if addr, ok := n.Get(KeyAddress).Interface().(map[string]any); ok {
		rec.Address = addr
	}

	return rec
}
