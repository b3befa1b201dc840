package chat

import "testing"

func TestSessionTitle(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"", ""},
		{"Теңдеуді шеш", "Теңдеуді шеш"},
		{"123456789012345678901234567890", "123456789012345678901234567890"},
		{"1234567890123456789012345678901", "123456789012345678901234567890"},
		{"Бөлшектерді қосу ережесін түсіндіріп берші", "Бөлшектерді қосу ережесін түсі"},
	}

	for _, tt := range tests {
		got := SessionTitle(tt.content)
		if got != tt.want {
			t.Errorf("SessionTitle(%q) = %q, want %q", tt.content, got, tt.want)
		}
	}
}

func TestNewUserMessage(t *testing.T) {
	m := NewUserMessage("2x + 3 = 7")
	if m.Role != RoleUser {
		t.Errorf("role = %q, want %q", m.Role, RoleUser)
	}
	if m.ID == "" {
		t.Error("expected non-empty message ID")
	}
	if m.Timestamp == 0 {
		t.Error("expected non-zero timestamp")
	}

	other := NewUserMessage("2x + 3 = 7")
	if other.ID == m.ID {
		t.Error("expected unique message IDs")
	}
}

func TestHasAttachment(t *testing.T) {
	m := NewUserMessage("text only")
	if m.HasAttachment() {
		t.Error("text message should have no attachment")
	}

	m.Image = "data:image/jpeg;base64,abc"
	if !m.HasAttachment() {
		t.Error("expected image attachment to be detected")
	}

	m.Image = ""
	m.File = &FileRef{Name: "task.pdf", Data: "data:application/pdf;base64,abc", MimeType: "application/pdf"}
	if !m.HasAttachment() {
		t.Error("expected file attachment to be detected")
	}
}

func TestGradeValid(t *testing.T) {
	for _, g := range AllGrades() {
		if !g.Valid() {
			t.Errorf("grade %q should be valid", g)
		}
	}
	for _, g := range []Grade{"", "4", "12", "x"} {
		if g.Valid() {
			t.Errorf("grade %q should be invalid", g)
		}
	}
}

func TestSplitDataURI(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		wantData string
		wantMime string
	}{
		{"full data URI", "data:image/jpeg;base64,SGVsbG8=", "SGVsbG8=", "image/jpeg"},
		{"pdf data URI", "data:application/pdf;base64,QUJD", "QUJD", "application/pdf"},
		{"bare base64", "SGVsbG8=", "SGVsbG8=", ""},
		{"malformed prefix", "data:nonsense", "data:nonsense", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, mime := SplitDataURI(tt.uri)
			if data != tt.wantData {
				t.Errorf("data = %q, want %q", data, tt.wantData)
			}
			if mime != tt.wantMime {
				t.Errorf("mime = %q, want %q", mime, tt.wantMime)
			}
		})
	}
}

func TestAttachmentDataURIRoundTrip(t *testing.T) {
	a := &Attachment{Data: "SGVsbG8=", MimeType: "image/png"}
	uri := a.DataURI()

	data, mime := SplitDataURI(uri)
	if data != a.Data {
		t.Errorf("data = %q, want %q", data, a.Data)
	}
	if mime != a.MimeType {
		t.Errorf("mime = %q, want %q", mime, a.MimeType)
	}
	if !a.IsImage() {
		t.Error("image/png attachment should report IsImage")
	}
}
