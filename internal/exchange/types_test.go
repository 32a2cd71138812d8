package exchange

import (
	"testing"
)

func TestDescriptorMapping(t *testing.T) {
	payload := testPayload()
	d := payload.Descriptor()

	if d.ID != payload.ID || d.AssetID != "payments-api" || d.Version != "2.0.0" {
		t.Errorf("identity fields not carried over: %+v", d)
	}
	if len(d.Categories) != 2 || d.Categories["api-type"] != "experience" {
		t.Errorf("categories = %v", d.Categories)
	}
	if d.FatRAML == nil {
		t.Fatal("fatRaml not selected")
	}
	if d.FatRAML.ExternalLink != "https://files.test/last.zip" {
		t.Errorf("classifier tie-break picked %q, want the last listed file", d.FatRAML.ExternalLink)
	}
	if d.FatRAML.MD5 != "cc" || d.FatRAML.SHA1 != "dd" {
		t.Errorf("checksums not carried: %+v", d.FatRAML)
	}
}

func TestDescriptorWithoutFiles(t *testing.T) {
	payload := AssetPayload{GroupID: "g", AssetID: "a", Version: "1"}
	d := payload.Descriptor()
	if d.FatRAML != nil {
		t.Errorf("fatRaml = %+v, want nil", d.FatRAML)
	}
	if d.Categories == nil || len(d.Categories) != 0 {
		t.Errorf("categories should be an empty map, got %v", d.Categories)
	}
}

func TestDescriptorPath(t *testing.T) {
	d := &AssetDescriptor{GroupID: "org.example", AssetID: "payments-api"}
	if got := d.Path(); got != "org.example/payments-api" {
		t.Errorf("Path() = %q", got)
	}
}
