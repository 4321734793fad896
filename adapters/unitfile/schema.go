package unitfile

import "github.com/hashicorp/hcl/v2"

// hclFile is the top-level structure of a unit file
type hclFile struct {
	Prefixes  []*hclPrefix   `hcl:"prefix,block"`
	Bases     []*hclBase     `hcl:"base,block"`
	Units     []*hclUnit     `hcl:"unit,block"`
	Constants []*hclConstant `hcl:"constant,block"`
	Kinds     []*hclKind     `hcl:"kind,block"`
}

type hclPrefix struct {
	Symbol string  `hcl:"symbol,label"`
	Name   string  `hcl:"name"`
	Factor float64 `hcl:"factor"`
}

type hclBase struct {
	Symbol      string `hcl:"symbol,label"`
	Description string `hcl:"description,optional"`
	Prefixed    bool   `hcl:"prefixed,optional"`
}

type hclUnit struct {
	Symbol      string         `hcl:"symbol,label"`
	Value       hcl.Expression `hcl:"value"`
	Factor      *float64       `hcl:"factor,optional"`
	Description string         `hcl:"description,optional"`
	Prefixed    bool           `hcl:"prefixed,optional"`
}

type hclConstant struct {
	Symbol      string         `hcl:"symbol,label"`
	Value       hcl.Expression `hcl:"value"`
	Description string         `hcl:"description,optional"`
}

type hclKind struct {
	Label string         `hcl:"label,label"`
	Unit  hcl.Expression `hcl:"unit"`
}

// definition is a unit or constant awaiting evaluation
type definition struct {
	symbol string
	value  hcl.Expression
}
