package types

// OutputFormat selects what the convert stage writes.
type OutputFormat string

const (
	OutputMarkdown OutputFormat = "markdown"
	OutputYAML     OutputFormat = "yaml"
	OutputJSON     OutputFormat = "json"
	OutputPDF      OutputFormat = "pdf"
)

// ExtractBackend identifies the PDF text extraction tool.
type ExtractBackend string

const (
	// BackendNative extracts the embedded text layer in pure Go.
	BackendNative ExtractBackend = "native"

	// BackendPoppler shells out to poppler's pdftotext.
	BackendPoppler ExtractBackend = "poppler"
)

// DuplicatePolicy decides what happens when a section header occurs more
// than once in the same export.
type DuplicatePolicy string

const (
	// DuplicatesConcat keeps every repeated section and appends what each one yields.
	DuplicatesConcat DuplicatePolicy = "concat"

	// DuplicatesLast keeps only the body of the last occurrence.
	DuplicatesLast DuplicatePolicy = "last"

	// DuplicatesFirst keeps only the body of the first occurrence.
	DuplicatesFirst DuplicatePolicy = "first"
)

// ParseConfig holds settings for the parsing stage.
type ParseConfig struct {
	// Duplicates selects the repeated-header policy (default concat).
	Duplicates DuplicatePolicy `json:"duplicates" yaml:"duplicates" mapstructure:"duplicates" validate:"omitempty,oneof=concat last first"`
}

// ArchiveConfig holds settings for the local archive of parsed resumes.
type ArchiveConfig struct {
	// Enabled records every successful conversion in the archive.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Dir is the directory holding resumes.db (default "archive").
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// MaxResults is the default number of rows returned by history queries (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results" validate:"gte=0"`
}

// ConvertConfig holds settings for one convert run.
type ConvertConfig struct {
	// PDFPath is the LinkedIn export to read. It must exist.
	PDFPath string `json:"pdf_path" yaml:"pdf_path" validate:"required,file"`

	// OutputPath is where the rendered document is written (default "resume.md").
	OutputPath string `json:"out" yaml:"out" mapstructure:"out" validate:"required"`

	// TemplatesDir is searched for resume.md.tmpl (default "templates").
	// A missing directory or template falls back to the built-in template.
	TemplatesDir string `json:"templates" yaml:"templates" mapstructure:"templates"`

	// Format selects the output renderer (default markdown).
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format" validate:"required,oneof=markdown yaml json pdf"`

	// Backend selects the PDF text extractor (default native).
	Backend ExtractBackend `json:"backend" yaml:"backend" mapstructure:"backend" validate:"required,oneof=native poppler"`

	// FrontMatter prepends YAML front matter to Markdown output.
	FrontMatter bool `json:"frontmatter" yaml:"frontmatter" mapstructure:"frontmatter"`

	Parse   ParseConfig   `json:"parse" yaml:"parse" mapstructure:"parse"`
	Archive ArchiveConfig `json:"archive" yaml:"archive" mapstructure:"archive"`
}

// Defaults for ConvertConfig fields left empty.
const (
	DefaultOutputPath   = "resume.md"
	DefaultTemplatesDir = "templates"
	DefaultArchiveDir   = "archive"
	DefaultMaxResults   = 20
)

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c ConvertConfig) WithDefaults() ConvertConfig {
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
	if c.TemplatesDir == "" {
		c.TemplatesDir = DefaultTemplatesDir
	}
	if c.Format == "" {
		c.Format = OutputMarkdown
	}
	if c.Backend == "" {
		c.Backend = BackendNative
	}
	if c.Parse.Duplicates == "" {
		c.Parse.Duplicates = DuplicatesConcat
	}
	if c.Archive.Dir == "" {
		c.Archive.Dir = DefaultArchiveDir
	}
	if c.Archive.MaxResults <= 0 {
		c.Archive.MaxResults = DefaultMaxResults
	}
	return c
}
