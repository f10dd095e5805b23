package request

type CreateAnnouncementRequest struct {
	Recipient string `json:"recipient" binding:"required"`
	WhatsApp  string `json:"whatsapp"`
	Text      string `json:"text" binding:"required"`
}

// DeleteAnnouncementRequest targets an announcement by its physical sheet
// row, the only identity announcements have.
type DeleteAnnouncementRequest struct {
	Row looseInt `json:"row" binding:"required"`
}
