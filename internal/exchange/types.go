package exchange

// FatRAMLClassifier tags the archive file holding the packaged RAML
// bundle for an asset version.
const FatRAMLClassifier = "fat-raml"

// AssetCategory is one key/value category entry as returned by the
// registry.
type AssetCategory struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// AssetFile describes one downloadable file attached to an asset version.
// Checksums are carried as received; nothing in this package verifies them.
type AssetFile struct {
	Classifier   string `json:"classifier"`
	Packaging    string `json:"packaging"`
	ExternalLink string `json:"externalLink"`
	CreatedDate  string `json:"createdDate"`
	MD5          string `json:"md5"`
	SHA1         string `json:"sha1"`
	MainFile     bool   `json:"mainFile"`
}

// AssetInstance is one deployed instance of an asset version.
type AssetInstance struct {
	EnvironmentName string `json:"environmentName"`
	Version         string `json:"version"`
}

// AssetPayload is the raw JSON shape the registry returns for a single
// asset. Callers that need a resolved view should go through Descriptor.
type AssetPayload struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UpdatedDate string          `json:"updatedDate"`
	GroupID     string          `json:"groupId"`
	AssetID     string          `json:"assetId"`
	Version     string          `json:"version"`
	Categories  []AssetCategory `json:"categories"`
	Files       []AssetFile     `json:"files"`
	Instances   []AssetInstance `json:"instances"`
}

// AssetDescriptor is the resolved in-memory view of one asset version.
// An empty ID means the asset is not resolvable through the registry and
// can only be downloaded manually. Descriptors are built once per
// response and never mutated afterwards.
type AssetDescriptor struct {
	ID          string            `json:"id,omitempty"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	UpdatedDate string            `json:"updatedDate"`
	GroupID     string            `json:"groupId"`
	AssetID     string            `json:"assetId"`
	Version     string            `json:"version"`
	Categories  map[string]string `json:"categories"`
	FatRAML     *AssetFile        `json:"fatRaml,omitempty"`
}

// Descriptor maps the raw payload into an AssetDescriptor: categories are
// flattened into a key to value map, and the fat-raml archive is picked
// from the file list. The file scan keeps overwriting its result, so when
// several files share the classifier the last one listed wins.
func (p *AssetPayload) Descriptor() *AssetDescriptor {
	d := &AssetDescriptor{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		UpdatedDate: p.UpdatedDate,
		GroupID:     p.GroupID,
		AssetID:     p.AssetID,
		Version:     p.Version,
		Categories:  make(map[string]string, len(p.Categories)),
	}
	for _, c := range p.Categories {
		d.Categories[c.Key] = c.Value
	}
	for i := range p.Files {
		if p.Files[i].Classifier == FatRAMLClassifier {
			f := p.Files[i]
			d.FatRAML = &f
		}
	}
	return d
}

// Path returns the registry path segment for the descriptor.
func (d *AssetDescriptor) Path() string {
	return d.GroupID + "/" + d.AssetID
}
