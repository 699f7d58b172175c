package hubspotdomain

import (
	"strconv"
	"strings"
	"time"
)

type ObjectType string

const (
	ObjectDeals     ObjectType = "deals"
	ObjectContacts  ObjectType = "contacts"
	ObjectCompanies ObjectType = "companies"
)

// Properties requested for each object type.
var (
	DealProperties    = []string{"dealname", "amount", "dealstage", "closedate", "createdate", "pipeline"}
	ContactProperties = []string{"firstname", "lastname", "email", "company", "createdate", "lastmodifieddate"}
	CompanyProperties = []string{"name", "domain", "industry", "annualrevenue", "createdate", "lastmodifieddate"}
)

// Properties holds CRM property values. HubSpot sends null for unset properties.
type Properties map[string]*string

func (p Properties) Get(key string) string {
	if v := p[key]; v != nil {
		return *v
	}
	return ""
}

// Object is a CRM record as returned by the v3 objects API.
type Object struct {
	ID         string     `json:"id"`
	Properties Properties `json:"properties"`
	CreatedAt  string     `json:"createdAt,omitempty"`
	UpdatedAt  string     `json:"updatedAt,omitempty"`
	Archived   bool       `json:"archived"`
}

const (
	stageClosedWon        = "closedwon"
	stageClosedWonDashed  = "closed-won"
	stageClosedLost       = "closedlost"
	stageClosedLostDashed = "closed-lost"
)

// Amount parses the deal amount; missing or malformed amounts count as 0.
func (o Object) Amount() float64 {
	amount, err := strconv.ParseFloat(strings.TrimSpace(o.Properties.Get("amount")), 64)
	if err != nil {
		return 0
	}
	return amount
}

func (o Object) Stage() string {
	return o.Properties.Get("dealstage")
}

func (o Object) IsWon() bool {
	stage := o.Stage()
	return stage == stageClosedWon || stage == stageClosedWonDashed
}

func (o Object) IsLost() bool {
	stage := o.Stage()
	return stage == stageClosedLost || stage == stageClosedLostDashed
}

// IsActive reports a deal that is neither won nor lost.
func (o Object) IsActive() bool {
	return !o.IsWon() && !o.IsLost()
}

// CloseDate accepts RFC 3339 timestamps, plain dates and epoch milliseconds.
func (o Object) CloseDate() (time.Time, bool) {
	raw := strings.TrimSpace(o.Properties.Get("closedate"))
	if raw == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, true
	}
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), true
	}
	return time.Time{}, false
}
