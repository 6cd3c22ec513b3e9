package models

// ProviderID is the stable identifier of a mail provider, also used for logo file names
type ProviderID string

const (
	ProviderGmail     ProviderID = "gmail"
	ProviderYahoo     ProviderID = "yahoo"
	ProviderMicrosoft ProviderID = "microsoft"
	ProviderProton    ProviderID = "proton"
	ProviderICloud    ProviderID = "icloud"
	ProviderHey       ProviderID = "hey"
	ProviderAOL       ProviderID = "aol"
	ProviderMailRu    ProviderID = "mail_ru"
)

// LinkParams carries the routing inputs handed to link builders.
// Both addresses are already trimmed and lowercased.
type LinkParams struct {
	Recipient string
	Sender    string
}

// LinkBuilder turns LinkParams into a URL. Builders never do I/O and never fail.
type LinkBuilder func(params LinkParams) string

// Provider represents a recognized email service
type Provider struct {
	ID          ProviderID
	DisplayName string
	Domains     []string // lowercase, owned by this provider only

	// Per-platform link builders
	Desktop LinkBuilder
	IOS     LinkBuilder // optional, Desktop is used when nil
	Android LinkBuilder
}

// LogoPath returns the static asset path of the provider logo
func (p *Provider) LogoPath() string {
	return "/logos/" + string(p.ID) + ".png"
}
