package entities

// Announcement is a free-form notice kept in the Avisos sheet.
//
// Row is the 1-based physical sheet row and is the announcement's only
// identity: deletes clear the row's cells in place so the positions of the
// remaining announcements never shift.

type Announcement struct {
	Row       int    `json:"row"`
	CreatedAt string `json:"created_at"`
	Recipient string `json:"recipient"`
	WhatsApp  string `json:"whatsapp"`
	Text      string `json:"text"`
}

// ArchiveStats summarizes the archived portion of the Pedidos sheet.

type ArchiveStats struct {
	TotalArchived     int    `json:"total_archived"`
	ArchivedThisMonth int    `json:"archived_this_month"`
	LastArchivedAt    string `json:"last_archived_at,omitempty"`
}

// SweepResult reports one archival pass over the Pedidos sheet.

type SweepResult struct {
	Checked  int `json:"checked"`
	Archived int `json:"archived"`
	Errors   int `json:"errors"`
}
