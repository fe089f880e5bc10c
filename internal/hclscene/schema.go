package hclscene

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes all top-level blocks of one scene file.
type fileRoot struct {
	Objects   []*objectSchema   `hcl:"object,block"`
	Groups    []*groupSchema    `hcl:"group,block"`
	Timelines []*timelineSchema `hcl:"timeline,block"`
	Triggers  []*triggerSchema  `hcl:"region_trigger,block"`
	Remain    hcl.Body          `hcl:",remain"`
}

type objectSchema struct {
	Name     string          `hcl:"name,label"`
	Position []float64       `hcl:"position,optional"`
	Rotation *rotationSchema `hcl:"rotation,block"`
	Relative *bool           `hcl:"relative,optional"`
	Visible  *bool           `hcl:"visible,optional"`
	Scale    *float64        `hcl:"scale,optional"`
	Color    []int           `hcl:"color,optional"`
	Link     *linkSchema     `hcl:"link,block"`
}

type rotationSchema struct {
	Mode   string    `hcl:"mode"`
	Vector []float64 `hcl:"vector,optional"`
	Angle  float64   `hcl:"angle,optional"`
}

type groupSchema struct {
	Name    string   `hcl:"name,label"`
	Members []string `hcl:"members"`
}

type linkSchema struct {
	Enabled       *bool            `hcl:"enabled,optional"`
	RemainEnabled *bool            `hcl:"remain_enabled,optional"`
	Reset         *int             `hcl:"reset,optional"`
	EnabledColor  []int            `hcl:"enabled_color,optional"`
	SelectedColor []int            `hcl:"selected_color,optional"`
	OnClick       []*onClickSchema `hcl:"on_click,block"`
}

// onClickSchema binds actions to one click count; a missing count binds the
// any-count fallback.
type onClickSchema struct {
	Count   *int            `hcl:"count,optional"`
	Actions []*actionSchema `hcl:"action,block"`
}

type timelineSchema struct {
	Name             string      `hcl:"name,label"`
	StartImmediately *bool       `hcl:"start_immediately,optional"`
	Entries          []*atSchema `hcl:"at,block"`
}

type atSchema struct {
	Time    float64         `hcl:"time"`
	Actions []*actionSchema `hcl:"action,block"`
}

type triggerSchema struct {
	Name          string          `hcl:"name,label"`
	Enabled       *bool           `hcl:"enabled,optional"`
	RemainEnabled *bool           `hcl:"remain_enabled,optional"`
	Duration      *float64        `hcl:"duration,optional"`
	Corner1       []float64       `hcl:"corner1"`
	Corner2       []float64       `hcl:"corner2"`
	Mode          *string         `hcl:"mode,optional"`
	Track         []string        `hcl:"track,optional"`
	DetectAny     *bool           `hcl:"detect_any,optional"`
	Actions       []*actionSchema `hcl:"action,block"`
}

// actionSchema holds exactly one action variant. The wrapper block keeps the
// authored dispatch order, which a flat per-kind slice would lose.
type actionSchema struct {
	Move     *moveSchema     `hcl:"move,block"`
	Sound    *soundSchema    `hcl:"sound,block"`
	Group    *groupVisSchema `hcl:"group,block"`
	Timeline *timerSchema    `hcl:"timeline,block"`
	Event    *eventSchema    `hcl:"event,block"`
	Reset    *resetSchema    `hcl:"reset,block"`
}

type moveSchema struct {
	Object   string          `hcl:"object"`
	Position []float64       `hcl:"position,optional"`
	Rotation *rotationSchema `hcl:"rotation,block"`
	Relative *bool           `hcl:"relative,optional"`
	Duration *float64        `hcl:"duration,optional"`
}

type soundSchema struct {
	Name      string  `hcl:"name"`
	Operation *string `hcl:"operation,optional"`
}

type groupVisSchema struct {
	Name     string   `hcl:"name"`
	Visible  bool     `hcl:"visible"`
	Duration *float64 `hcl:"duration,optional"`
}

type timerSchema struct {
	Name      string  `hcl:"name"`
	Operation *string `hcl:"operation,optional"`
}

type eventSchema struct {
	Trigger string `hcl:"trigger"`
	Enable  bool   `hcl:"enable"`
}

type resetSchema struct {
	Object string `hcl:"object"`
}
