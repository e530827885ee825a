package ui

import "github.com/vango-dev/gallery/pkg/vdom"

// FieldOption configures Input and Textarea.
type FieldOption func(*fieldConfig)

type fieldConfig struct {
	id          string
	name        string
	typ         string
	value       string
	placeholder string
	rows        int
	disabled    bool
	required    bool
	invalid     bool
	class       string
}

// FieldID sets the element id.
func FieldID(id string) FieldOption { return func(c *fieldConfig) { c.id = id } }

// FieldName sets the form field name.
func FieldName(name string) FieldOption { return func(c *fieldConfig) { c.name = name } }

// FieldType sets the input type. Default: "text".
func FieldType(t string) FieldOption { return func(c *fieldConfig) { c.typ = t } }

// FieldValue sets the initial value.
func FieldValue(v string) FieldOption { return func(c *fieldConfig) { c.value = v } }

// FieldPlaceholder sets the placeholder text.
func FieldPlaceholder(p string) FieldOption { return func(c *fieldConfig) { c.placeholder = p } }

// FieldRows sets the textarea height in rows.
func FieldRows(n int) FieldOption { return func(c *fieldConfig) { c.rows = n } }

// FieldDisabled disables the control.
func FieldDisabled() FieldOption { return func(c *fieldConfig) { c.disabled = true } }

// FieldRequired marks the control required.
func FieldRequired() FieldOption { return func(c *fieldConfig) { c.required = true } }

// FieldInvalid marks the control as failing validation.
func FieldInvalid() FieldOption { return func(c *fieldConfig) { c.invalid = true } }

// FieldClass adds CSS classes.
func FieldClass(class string) FieldOption {
	return func(c *fieldConfig) { c.class = CN(c.class, class) }
}

const fieldBase = "flex w-full rounded-md border border-input bg-background px-3 py-2 text-sm ring-offset-background placeholder:text-muted-foreground focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring disabled:cursor-not-allowed disabled:opacity-50"

func (c *fieldConfig) attrs() []any {
	args := []any{vdom.ClassIf(c.invalid, "border-destructive")}
	if c.id != "" {
		args = append(args, vdom.ID(c.id))
	}
	if c.name != "" {
		args = append(args, vdom.Name(c.name))
	}
	if c.placeholder != "" {
		args = append(args, vdom.Placeholder(c.placeholder))
	}
	if c.disabled {
		args = append(args, vdom.Disabled())
	}
	if c.required {
		args = append(args, vdom.Required())
	}
	if c.invalid {
		args = append(args, vdom.Attr{Key: "aria-invalid", Value: true})
	}
	return args
}

// Input renders a text input.
func Input(opts ...FieldOption) *vdom.VNode {
	cfg := fieldConfig{typ: "text"}
	for _, opt := range opts {
		opt(&cfg)
	}
	args := []any{slot("input"), vdom.Type(cfg.typ), vdom.Class("h-10", fieldBase, cfg.class)}
	args = append(args, cfg.attrs()...)
	if cfg.value != "" {
		args = append(args, vdom.Value(cfg.value))
	}
	return vdom.Input(args...)
}

// Textarea renders a multi-line text field.
func Textarea(opts ...FieldOption) *vdom.VNode {
	cfg := fieldConfig{rows: 3}
	for _, opt := range opts {
		opt(&cfg)
	}
	args := []any{slot("textarea"), vdom.Rows(cfg.rows), vdom.Class("min-h-[80px]", fieldBase, cfg.class)}
	args = append(args, cfg.attrs()...)
	args = append(args, cfg.value)
	return vdom.Textarea(args...)
}

// Label renders a form label bound to the control with id.
func Label(forID string, children ...any) *vdom.VNode {
	args := []any{slot("label"), vdom.Class("text-sm font-medium leading-none peer-disabled:cursor-not-allowed peer-disabled:opacity-70")}
	if forID != "" {
		args = append(args, vdom.For(forID))
	}
	args = append(args, children...)
	return vdom.Label(args...)
}

// ToggleOption configures Checkbox and Switch.
type ToggleOption func(*toggleConfig)

type toggleConfig struct {
	name     string
	checked  bool
	disabled bool
	label    string
}

// ToggleName sets the form field name.
func ToggleName(name string) ToggleOption { return func(c *toggleConfig) { c.name = name } }

// ToggleChecked renders the control checked.
func ToggleChecked() ToggleOption { return func(c *toggleConfig) { c.checked = true } }

// ToggleDisabled disables the control.
func ToggleDisabled() ToggleOption { return func(c *toggleConfig) { c.disabled = true } }

// ToggleLabel renders a label next to the control.
func ToggleLabel(text string) ToggleOption { return func(c *toggleConfig) { c.label = text } }

func (c *toggleConfig) input(id, name, class string, extra ...any) *vdom.VNode {
	args := []any{slot(name), vdom.ID(id), vdom.Type("checkbox"), vdom.Class("peer", class)}
	if c.name != "" {
		args = append(args, vdom.Name(c.name))
	}
	if c.checked {
		args = append(args, vdom.Checked())
	}
	if c.disabled {
		args = append(args, vdom.Disabled())
	}
	args = append(args, extra...)
	return vdom.Input(args...)
}

func (c *toggleConfig) wrap(id string, control *vdom.VNode) *vdom.VNode {
	if c.label == "" {
		return control
	}
	return vdom.Div(
		vdom.Class("flex items-center space-x-2"),
		control,
		Label(id, c.label),
	)
}

// Checkbox renders a checkbox with an optional label.
func Checkbox(id string, opts ...ToggleOption) *vdom.VNode {
	var cfg toggleConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	control := cfg.input(id, "checkbox", "h-4 w-4 shrink-0 rounded-sm border border-primary accent-primary disabled:cursor-not-allowed disabled:opacity-50")
	return cfg.wrap(id, control)
}

// Switch renders a checkbox styled as a toggle switch.
func Switch(id string, opts ...ToggleOption) *vdom.VNode {
	var cfg toggleConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	control := cfg.input(id, "switch",
		"switch h-6 w-11 shrink-0 cursor-pointer appearance-none rounded-full bg-input transition-colors checked:bg-primary disabled:cursor-not-allowed disabled:opacity-50",
		vdom.Role("switch"),
		vdom.Attr{Key: "aria-checked", Value: cfg.checked},
	)
	return cfg.wrap(id, control)
}

// Toggle renders a two-state button.
func Toggle(pressed bool, opts ...ButtonOption) *vdom.VNode {
	opts = append([]ButtonOption{
		ButtonVariant(VariantOutline),
		ButtonClass("data-[state=on]:bg-accent"),
		ButtonAttrs(
			vdom.Attr{Key: "aria-pressed", Value: pressed},
			vdom.Data("state", onOff(pressed)),
			vdom.Hook("Toggle", nil)[0],
		),
	}, opts...)
	node := Button(opts...)
	node.Props["data-slot"] = "toggle"
	return node
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
