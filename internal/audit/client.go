package audit

// ClientInfo identifies the caller behind an audited operation, taken from
// the request at the HTTP boundary.
type ClientInfo struct {
	IP        string
	UserAgent string
}

// Details returns the base audit details for this client. Callers add
// operation-specific keys on top.
func (c ClientInfo) Details() Details {
	return Details{"ip": c.IP, "userAgent": c.UserAgent}
}
