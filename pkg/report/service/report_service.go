package service

type Summary struct {
	Conversations int64            `json:"conversations"`
	Messages      int64            `json:"messages"`
	RatingsUp     int64            `json:"ratings_up"`
	RatingsDown   int64            `json:"ratings_down"`
	Articles      int64            `json:"articles"`
	Chunks        int64            `json:"chunks"`
	Contacts      int64            `json:"contacts"`
	TicketsByStat map[string]int64 `json:"tickets_by_status"`
}

type ReportService interface {
	Summary() (*Summary, error)
	// ExportXLSX renders the summary as a spreadsheet for the back office.
	ExportXLSX() ([]byte, error)
}
