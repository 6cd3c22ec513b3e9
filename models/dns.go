package models

// DNSTypeMX is the resource record type code of mail exchange records
const DNSTypeMX = 15

// DNSResponse mirrors the JSON body of a DNS-over-HTTPS query
// (application/dns-json). The wire resolver fills the same shape.
type DNSResponse struct {
	Status int         `json:"Status"`
	Answer []DNSAnswer `json:"Answer"`
}

// DNSAnswer is a single answer entry, data being "<priority> <exchange>[.]" for MX
type DNSAnswer struct {
	Name string `json:"name,omitempty"`
	Type int    `json:"type"`
	TTL  int    `json:"TTL,omitempty"`
	Data string `json:"data"`
}

// MxRecord is a parsed mail exchange record
type MxRecord struct {
	Priority uint16
	Exchange string // lowercase, no trailing dot
}
