package oneinch_domains

// DomainRecord is a single name-to-address resolution result
type DomainRecord struct {
	Protocol string `json:"protocol"`
	Address  string `json:"address"`
	CheckURL string `json:"checkUrl,omitempty"`
}

// ReverseRecord is a single address-to-name resolution result
type ReverseRecord struct {
	Protocol string `json:"protocol"`
	Domain   string `json:"domain"`
	CheckURL string `json:"checkUrl,omitempty"`
}

type lookupUpstreamResponse struct {
	Result []DomainRecord `json:"result"`
}

type reverseUpstreamResponse struct {
	Result ReverseRecord `json:"result"`
}

// LookupResponse is the name resolution served to the dashboard
type LookupResponse struct {
	Name    string         `json:"name"`
	Records []DomainRecord `json:"records"`
}

// ReverseResponse is the reverse resolution served to the dashboard
type ReverseResponse struct {
	Address string         `json:"address"`
	Record  *ReverseRecord `json:"record"`
}
