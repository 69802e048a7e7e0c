package models

import (
	"encoding/json"
	"testing"
)

func TestIsValidCategory(t *testing.T) {
	for _, c := range Categories {
		if !IsValidCategory(c) {
			t.Errorf("Expected %s to be valid", c)
		}
	}
	if IsValidCategory(AllCategories) {
		t.Error("Expected All to be rejected as a category")
	}
	if IsValidCategory("technology") {
		t.Error("Expected category match to be case sensitive")
	}
}

func TestArticle_Apply(t *testing.T) {
	original := Article{ID: 1, Title: "Title", Content: "Body", Category: "Technology"}
	enhanced := "Richer body"
	processed := true

	updated := original.Apply(ArticleUpdate{EnhancedContent: &enhanced, IsProcessed: &processed})

	if updated.ID != 1 || updated.Title != "Title" {
		t.Errorf("Expected untouched fields to survive, got %+v", updated)
	}
	if updated.EnhancedContent == nil || *updated.EnhancedContent != enhanced {
		t.Errorf("Expected enhanced content to be set")
	}
	if !updated.IsProcessed {
		t.Error("Expected article to be processed")
	}
	if original.IsProcessed || original.EnhancedContent != nil {
		t.Error("Expected original to be unchanged")
	}
}

func TestArticle_NarrationText(t *testing.T) {
	a := Article{Content: "plain"}
	if a.NarrationText() != "plain" {
		t.Errorf("Expected content, got %q", a.NarrationText())
	}
	empty := ""
	a.EnhancedContent = &empty
	if a.NarrationText() != "plain" {
		t.Errorf("Expected content for empty enhancement, got %q", a.NarrationText())
	}
	rich := "rich"
	a.EnhancedContent = &rich
	if a.NarrationText() != "rich" {
		t.Errorf("Expected enhanced content, got %q", a.NarrationText())
	}
}

func TestDownloadKey(t *testing.T) {
	if got := DownloadKey(1, 5); got != "1-5" {
		t.Errorf("Expected 1-5, got %s", got)
	}
}

func TestMetadata_ScanValue(t *testing.T) {
	var m Metadata
	if err := m.Scan(`{"language":"en"}`); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if m["language"] != "en" {
		t.Errorf("Expected language en, got %v", m["language"])
	}

	if err := m.Scan(nil); err != nil || m != nil {
		t.Errorf("Expected nil metadata for NULL, got %v (%v)", m, err)
	}

	v, err := Metadata(nil).Value()
	if err != nil || v != nil {
		t.Errorf("Expected NULL value for nil metadata, got %v", v)
	}
}

func TestStringList_Scan(t *testing.T) {
	var s StringList
	if err := s.Scan([]byte(`["3","1"]`)); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(s) != 2 || s[0] != "3" {
		t.Errorf("Unexpected list %v", s)
	}
	if err := s.Scan(42); err == nil {
		t.Error("Expected error for unsupported source type")
	}

	v, _ := StringList(nil).Value()
	if v != "[]" {
		t.Errorf("Expected empty JSON array, got %v", v)
	}
}

func TestFlexibleID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input   string
		want    FlexibleID
		wantErr bool
	}{
		{`7`, 7, false},
		{`"7"`, 7, false},
		{`" 12"`, 0, true},
		{`"abc"`, 0, true},
		{`1.5`, 0, true},
		{`null`, 0, false},
	}

	for _, tt := range tests {
		var got MarkReadRequest
		err := json.Unmarshal([]byte(`{"notificationId":`+tt.input+`}`), &got)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: expected error %v, got %v", tt.input, tt.wantErr, err)
			continue
		}
		if got.NotificationID != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.input, tt.want, got.NotificationID)
		}
	}
}
