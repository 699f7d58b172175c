package hubspotdomain

// ListResponse is one page of GET /crm/v3/objects/{type}.
type ListResponse struct {
	Results []Object `json:"results"`
	Paging  *Paging  `json:"paging,omitempty"`
}

type Paging struct {
	Next *NextPage `json:"next,omitempty"`
}

type NextPage struct {
	After string `json:"after"`
	Link  string `json:"link,omitempty"`
}

// NextAfter returns the cursor of the following page, or "" on the last page.
func (r ListResponse) NextAfter() string {
	if r.Paging == nil || r.Paging.Next == nil {
		return ""
	}
	return r.Paging.Next.After
}

// ErrorResponse is the error body HubSpot returns with non-2xx statuses.
type ErrorResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	Category      string `json:"category"`
	CorrelationID string `json:"correlationId"`
}
