package conv

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultDateLayout is the default layout used for time formatting and the first one tried for parsing
const DefaultDateLayout = "2006-01-02 15:04:05.000"

// DefaultDateLayouts lists layouts tried in order when parsing time text
var DefaultDateLayouts = []string{
	DefaultDateLayout,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"20060102150405",
	"20060102",
	"15:04:05",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC850,
	time.ANSIC,
	"2006年01月02日 15时04分05秒",
	"2006年01月02日",
}

// Options contains configuration for the converters
type Options struct {
	// DateLayouts specifies layouts for time parsing, the first one is used for formatting
	DateLayouts []string `yaml:"dateLayouts,omitempty"`
	// Location is the time zone name applied to layouts without zone, UTC when empty
	Location string `yaml:"location,omitempty"`
	// TagName is the struct tag name to look for field names
	TagName string `yaml:"tagName,omitempty"`
	// CaseSensitive controls whether field/key matching is case sensitive
	CaseSensitive bool `yaml:"caseSensitive,omitempty"`
	// ClonePointerData if true, creates a deep copy of data pointed by pointers
	ClonePointerData bool `yaml:"clonePointerData,omitempty"`
	// CheckOverflow if true, fails narrowing conversions that do not fit the target
	CheckOverflow bool `yaml:"checkOverflow,omitempty"`
	// Delimiter separates elements of text converted to containers
	Delimiter string `yaml:"delimiter,omitempty"`
	// Charset is the character set used between text and bytes
	Charset string `yaml:"charset,omitempty"`

	location *time.Location
}

// DefaultOptions returns default conversion options
func DefaultOptions() Options {
	return Options{
		DateLayouts: DefaultDateLayouts,
		TagName:     "json",
		Delimiter:   ",",
		Charset:     "utf-8",
	}
}

// ParseOptions parses YAML encoded options, unset values keep defaults
func ParseOptions(data []byte) (Options, error) {
	ret := DefaultOptions()
	if err := yaml.Unmarshal(data, &ret); err != nil {
		return ret, fmt.Errorf("invalid options: %w", err)
	}
	if err := ret.Init(); err != nil {
		return ret, err
	}
	return ret, nil
}

// LoadOptions loads YAML encoded options from a file
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultOptions(), fmt.Errorf("failed to read options %v: %w", path, err)
	}
	return ParseOptions(data)
}

// Init validates options and fills missing values with defaults
func (o *Options) Init() error {
	defaults := DefaultOptions()
	if len(o.DateLayouts) == 0 {
		o.DateLayouts = defaults.DateLayouts
	}
	if o.Delimiter == "" {
		o.Delimiter = defaults.Delimiter
	}
	if o.Charset == "" {
		o.Charset = defaults.Charset
	}
	o.location = time.UTC
	if o.Location != "" {
		location, err := time.LoadLocation(o.Location)
		if err != nil {
			return fmt.Errorf("invalid location %v: %w", o.Location, err)
		}
		o.location = location
	}
	return nil
}

// TimeLocation returns location applied to layouts without zone
func (o *Options) TimeLocation() *time.Location {
	if o.location == nil {
		return time.UTC
	}
	return o.location
}

// DateLayout returns the formatting layout
func (o *Options) DateLayout() string {
	if len(o.DateLayouts) == 0 {
		return DefaultDateLayout
	}
	return o.DateLayouts[0]
}
