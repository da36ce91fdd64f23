package blockkit

import (
	"fmt"
	"unicode/utf8"
)

// Documented platform ceilings. The platform enforces these; the library only reports them.
const (
	MaxBlocksPerMessage    = 50
	MaxBlockIDLength       = 255
	MaxActionIDLength      = 255
	MaxActionsElements     = 25
	MaxContextElements     = 10
	MaxSectionFields       = 10
	MaxSectionTextLength   = 3000
	MaxFieldTextLength     = 2000
	MaxHeaderTextLength    = 150
	MaxButtonTextLength    = 75
	MaxButtonValueLength   = 2000
	MaxURLLength           = 3000
	MaxAltTextLength       = 2000
	MaxDialogTitleLength   = 100
	MaxDialogTextLength    = 300
	MaxDialogButtonLength  = 30
	MaxOptionTextLength    = 75
	MaxOptionValueLength   = 150
	MaxOverflowOptions     = 5
	MaxInputLabelLength    = 2000
	MaxPlaceholderLength   = 150
	MaxImageTitleLength    = 2000
	MaxSelectOptionsLength = 100
	MaxOptionGroups        = 100
	MaxOptionGroupLabel    = 75
)

// LimitWarning reports a value exceeding a documented platform ceiling.
type LimitWarning struct {
	Path   string // Location in the payload, e.g. "blocks[2].elements[0].text"
	Limit  int    // Documented maximum
	Actual int    // Observed length or count
}

func (w LimitWarning) String() string {
	return fmt.Sprintf("%s: %d exceeds documented limit of %d", w.Path, w.Actual, w.Limit)
}

// CheckLimits walks blocks and reports every value that exceeds a documented
// ceiling. Lengths are counted in runes. An empty result means nothing was found.
func CheckLimits(blocks []Block) []LimitWarning {
	c := &limitChecker{}
	c.count("blocks", len(blocks), MaxBlocksPerMessage)
	for i, b := range blocks {
		c.block(fmt.Sprintf("blocks[%d]", i), b)
	}
	return c.warnings
}

type limitChecker struct {
	warnings []LimitWarning
}

func (c *limitChecker) count(path string, n, limit int) {
	if n > limit {
		c.warnings = append(c.warnings, LimitWarning{Path: path, Limit: limit, Actual: n})
	}
}

func (c *limitChecker) length(path, s string, limit int) {
	c.count(path, utf8.RuneCountInString(s), limit)
}

func (c *limitChecker) text(path string, t Text, limit int) {
	if t != nil {
		c.length(path, t.Content(), limit)
	}
}

func (c *limitChecker) block(path string, b Block) {
	if b == nil {
		return
	}
	c.length(path+".block_id", b.ID(), MaxBlockIDLength)
	switch b := b.(type) {
	case ActionsBlock:
		c.count(path+".elements", len(b.Elements), MaxActionsElements)
		for i, e := range b.Elements {
			c.element(fmt.Sprintf("%s.elements[%d]", path, i), e)
		}
	case ContextBlock:
		c.count(path+".elements", len(b.Elements), MaxContextElements)
		for i, e := range b.Elements {
			p := fmt.Sprintf("%s.elements[%d]", path, i)
			switch e := e.(type) {
			case ImageElement:
				c.element(p, e)
			case Text:
				c.text(p+".text", e, MaxSectionTextLength)
			}
		}
	case HeaderBlock:
		c.length(path+".text", b.Text.Text, MaxHeaderTextLength)
	case ImageBlock:
		c.length(path+".alt_text", b.AltText, MaxAltTextLength)
		c.length(path+".image_url", b.ImageURL, MaxURLLength)
		if b.Title != nil {
			c.length(path+".title", b.Title.Text, MaxImageTitleLength)
		}
	case InputBlock:
		c.length(path+".label", b.Label.Text, MaxInputLabelLength)
		if b.Element != nil {
			c.element(path+".element", b.Element)
		}
	case SectionBlock:
		c.text(path+".text", b.Text, MaxSectionTextLength)
		if b.Accessory != nil {
			c.element(path+".accessory", b.Accessory)
		}
	case FieldsSectionBlock:
		c.text(path+".text", b.Text, MaxSectionTextLength)
		c.count(path+".fields", len(b.Fields), MaxSectionFields)
		for i, f := range b.Fields {
			c.text(fmt.Sprintf("%s.fields[%d]", path, i), f, MaxFieldTextLength)
		}
	case VideoBlock:
		c.length(path+".video_url", b.VideoURL, MaxURLLength)
		c.length(path+".thumbnail_url", b.ThumbnailURL, MaxURLLength)
	}
}

func (c *limitChecker) element(path string, e Element) {
	if id, ok := ActionIDOf(e); ok {
		c.length(path+".action_id", id, MaxActionIDLength)
	}
	if ms, ok := MultiSelectFieldsOf(e); ok {
		c.confirm(path+".confirm", ms.Confirm)
		c.placeholder(path, ms.Placeholder)
	}
	switch e := e.(type) {
	case Button:
		c.length(path+".text", e.Text.Text, MaxButtonTextLength)
		c.length(path+".value", e.Value, MaxButtonValueLength)
		c.length(path+".url", e.URL, MaxURLLength)
		c.confirm(path+".confirm", e.Confirm)
	case ImageElement:
		c.length(path+".alt_text", e.AltText, MaxAltTextLength)
		c.length(path+".image_url", e.ImageURL, MaxURLLength)
	case Overflow:
		c.count(path+".options", len(e.Options), MaxOverflowOptions)
		c.options(path+".options", e.Options)
		c.confirm(path+".confirm", e.Confirm)
	case StaticSelect:
		c.optionSource(path, e.Options, e.OptionGroups)
		c.confirm(path+".confirm", e.Confirm)
		c.placeholder(path, e.Placeholder)
	case MultiStaticSelect:
		c.optionSource(path, e.Options, e.OptionGroups)
	case Checkboxes:
		c.options(path+".options", e.Options)
		c.confirm(path+".confirm", e.Confirm)
	case RadioButtons:
		c.options(path+".options", e.Options)
		c.confirm(path+".confirm", e.Confirm)
	case ExternalSelect:
		c.confirm(path+".confirm", e.Confirm)
		c.placeholder(path, e.Placeholder)
	case UsersSelect:
		c.confirm(path+".confirm", e.Confirm)
		c.placeholder(path, e.Placeholder)
	case ConversationsSelect:
		c.confirm(path+".confirm", e.Confirm)
		c.placeholder(path, e.Placeholder)
	case ChannelsSelect:
		c.confirm(path+".confirm", e.Confirm)
		c.placeholder(path, e.Placeholder)
	case DatePicker:
		c.confirm(path+".confirm", e.Confirm)
		c.placeholder(path, e.Placeholder)
	case DatetimePicker:
		c.confirm(path+".confirm", e.Confirm)
	case Timepicker:
		c.confirm(path+".confirm", e.Confirm)
		c.placeholder(path, e.Placeholder)
	case PlainTextInput:
		c.placeholder(path, e.Placeholder)
	}
}

// optionSource checks flat options or option groups of a static select.
func (c *limitChecker) optionSource(path string, options []Option, groups []OptionGroup) {
	c.count(path+".options", len(options), MaxSelectOptionsLength)
	c.options(path+".options", options)
	c.count(path+".option_groups", len(groups), MaxOptionGroups)
	for i, g := range groups {
		p := fmt.Sprintf("%s.option_groups[%d]", path, i)
		c.length(p+".label", g.Label.Text, MaxOptionGroupLabel)
		c.count(p+".options", len(g.Options), MaxSelectOptionsLength)
		c.options(p+".options", g.Options)
	}
}

func (c *limitChecker) confirm(path string, d *ConfirmationDialog) {
	if d == nil {
		return
	}
	c.length(path+".title", d.Title.Text, MaxDialogTitleLength)
	c.length(path+".text", d.Text.Text, MaxDialogTextLength)
	c.length(path+".confirm", d.Confirm.Text, MaxDialogButtonLength)
	c.length(path+".deny", d.Deny.Text, MaxDialogButtonLength)
}

func (c *limitChecker) options(path string, options []Option) {
	for i, o := range options {
		p := fmt.Sprintf("%s[%d]", path, i)
		c.text(p+".text", o.Text, MaxOptionTextLength)
		c.length(p+".value", o.Value, MaxOptionValueLength)
	}
}

func (c *limitChecker) placeholder(path string, p *PlainText) {
	if p != nil {
		c.length(path+".placeholder", p.Text, MaxPlaceholderLength)
	}
}
