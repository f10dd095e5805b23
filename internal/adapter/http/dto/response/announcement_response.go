package response

import "malharia_pdv/internal/domain/entities"

type AnnouncementResponse struct {
	Row       int    `json:"row"`
	CreatedAt string `json:"created_at"`
	Recipient string `json:"recipient"`
	WhatsApp  string `json:"whatsapp"`
	Text      string `json:"text"`
}

func FromAnnouncement(a entities.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		Row:       a.Row,
		CreatedAt: a.CreatedAt,
		Recipient: a.Recipient,
		WhatsApp:  a.WhatsApp,
		Text:      a.Text,
	}
}

func FromAnnouncements(list []entities.Announcement) []AnnouncementResponse {
	out := make([]AnnouncementResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAnnouncement(a))
	}
	return out
}
