package pipeline

import (
	"errors"
	"strings"

	"github.com/npillmayer/markview/core"
	"github.com/npillmayer/markview/core/option"
	"github.com/npillmayer/schuko"
)

// Themes
const (
	Light = "light"
	Dark  = "dark"
)

// Configuration keys read by NewFromConfiguration.
const (
	KeyTheme          = "markview.theme"
	KeyBasePath       = "markview.basepath"
	KeyCustomStyle    = "markview.customstyle"
	KeyStrict         = "markview.strict"
	KeyJoinParagraphs = "markview.joinparagraphs"
)

// ErrUnknownTheme is returned for themes other than Light and Dark.
var ErrUnknownTheme = errors.New("unknown theme")

// Config is the configuration of a pipeline.
type Config struct {
	Theme              string  `json:"theme"`              // Light or Dark
	BasePath           string  `json:"basePath"`           // prefix for relative references
	TapSink            TapSink `json:"-"`                  // receives tap events, may be nil
	SupportCustomStyle bool    `json:"supportCustomStyle"` // passed through to the host
	StrictCloseTags    bool    `json:"strictCloseTags"`    // HTML close tags must match
	JoinParagraphs     bool    `json:"joinParagraphs"`     // join adjacent Markdown paragraph lines
}

// DefaultConfig returns the configuration of a pipeline created without
// options.
func DefaultConfig() Config {
	return Config{
		Theme:              Light,
		SupportCustomStyle: true,
	}
}

// Option sets a configuration value, either for a pipeline or for a single call.
// Fields not touched by an option keep the pipeline's value.
type Option func(*Config)

// WithTheme sets the theme.
func WithTheme(theme string) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithBasePath sets the prefix for relative link and image references.
func WithBasePath(path string) Option {
	return func(c *Config) {
		c.BasePath = path
	}
}

// WithTapSink sets the receiver of tap events.
func WithTapSink(sink TapSink) Option {
	return func(c *Config) {
		c.TapSink = sink
	}
}

// WithCustomStyle sets the flag passed to the host renderer.
func WithCustomStyle(support bool) Option {
	return func(c *Config) {
		c.SupportCustomStyle = support
	}
}

// WithStrictCloseTags makes HTML close tags close only an element of the same name.
func WithStrictCloseTags(strict bool) Option {
	return func(c *Config) {
		c.StrictCloseTags = strict
	}
}

// WithJoinParagraphs makes adjacent Markdown paragraph lines one paragraph.
func WithJoinParagraphs(join bool) Option {
	return func(c *Config) {
		c.JoinParagraphs = join
	}
}

// ConfigFrom reads a configuration from conf. Keys not set in conf keep
// their default values.
func ConfigFrom(conf schuko.Configuration) (Config, error) {
	c := DefaultConfig()
	if conf == nil {
		return c, nil
	}
	theme := option.String()
	if conf.IsSet(KeyTheme) {
		theme = option.SomeString(conf.GetString(KeyTheme))
	}
	t, err := matchTheme(theme)
	if err != nil {
		return c, err
	}
	c.Theme = t
	c.BasePath = basePathFrom(conf)
	c.SupportCustomStyle = boolFrom(conf, KeyCustomStyle).OrElse(c.SupportCustomStyle)
	c.StrictCloseTags = boolFrom(conf, KeyStrict).OrElse(c.StrictCloseTags)
	c.JoinParagraphs = boolFrom(conf, KeyJoinParagraphs).OrElse(c.JoinParagraphs)
	return c, nil
}

// basePathFrom reads the base path with surrounding blanks removed. An unset
// base path is empty.
func basePathFrom(conf schuko.Configuration) string {
	path := option.String()
	if conf.IsSet(KeyBasePath) {
		path = option.SomeString(conf.GetString(KeyBasePath))
	}
	return option.Safe(path.Match(option.Maybe{
		option.None: "",
		option.Some: func(v interface{}) (interface{}, error) {
			return strings.TrimSpace(v.(option.StringT).Unwrap()), nil
		},
	})).(string)
}

func boolFrom(conf schuko.Configuration, key string) option.BoolT {
	if !conf.IsSet(key) {
		return option.Bool()
	}
	return option.SomeBool(conf.GetBool(key))
}

// matchTheme validates a theme. An unset theme is Light.
func matchTheme(theme option.StringT) (string, error) {
	t, err := theme.Match(option.Of{
		option.None: Light,
		Light:       Light,
		Dark:        Dark,
		option.Some: option.Fail(ErrUnknownTheme),
	})
	if err != nil {
		return "", core.WrapError(err, core.EINVALID, "theme must be %q or %q, is %s", Light, Dark, theme)
	}
	return t.(string), nil
}

// validate checks a merged configuration.
func (c Config) validate() error {
	_, err := matchTheme(option.SomeString(c.Theme))
	return err
}
