package directory

// Profile describes the header names of one client directory export.
// Adding a new export is adding a Profile to the profiles slice.
type Profile struct {
	Name       string
	LabelCol   string
	AddressCol string // optional
	PhoneCol   string // optional
}

// profiles is tried in order; more specific headers come first.
var profiles = []Profile{
	{
		Name:       "google contacts",
		LabelCol:   "Organization Name",
		AddressCol: "Address 1 - Formatted",
		PhoneCol:   "Phone 1 - Value",
	},
	{
		Name:       "outlook",
		LabelCol:   "Company",
		AddressCol: "Business Street",
		PhoneCol:   "Business Phone",
	},
	{
		Name:       "tempo",
		LabelCol:   "label",
		AddressCol: "address",
		PhoneCol:   "phone",
	},
	{
		Name:       "pt",
		LabelCol:   "nome",
		AddressCol: "morada",
		PhoneCol:   "telefone",
	},
	{
		Name:       "en",
		LabelCol:   "name",
		AddressCol: "address",
		PhoneCol:   "phone",
	},
}

// positional is used when no header row is present.
var positional = Profile{Name: "positional"}
