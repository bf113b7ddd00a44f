package parser

import "strings"

// Command represents a top-level line of the command language
type Command struct {
	Health  *HealthCmd  `parser:"( @@"`
	Status  *StatusCmd  `parser:"| @@"`
	Scan    *ScanCmd    `parser:"| @@"`
	Spawn   *SpawnCmd   `parser:"| @@"`
	Despawn *DespawnCmd `parser:"| @@"`
	Roll    *RollCmd    `parser:"| @@"`
	Show    *ShowCmd    `parser:"| @@"`
	Check   *CheckCmd   `parser:"| @@"`
	Help    *HelpCmd    `parser:"| @@ )"`
}

// Keyword returns the lowercased leading keyword of the command.
func (c *Command) Keyword() string {
	switch {
	case c.Health != nil:
		return c.Health.Name()
	case c.Status != nil:
		return c.Status.Name()
	case c.Scan != nil:
		return c.Scan.Name()
	case c.Spawn != nil:
		return "spawn"
	case c.Despawn != nil:
		return "despawn"
	case c.Roll != nil:
		return "roll"
	case c.Show != nil:
		return "show"
	case c.Check != nil:
		return "check"
	case c.Help != nil:
		return "help"
	}
	return ""
}

// HealthCmd carries an amount: create, chip, heal and fortify.
type HealthCmd struct {
	Keyword string      `parser:"@(\"create\"|\"chip\"|\"heal\"|\"fortify\")"`
	Amount  *DiceExpr   `parser:"@@"`
	Target  *TargetExpr `parser:"@@?"`
}

func (c *HealthCmd) Name() string { return strings.ToLower(c.Keyword) }

// StatusCmd tags or untags the right-most die: "add fortified 2 to: goblin".
type StatusCmd struct {
	Keyword string      `parser:"@(\"add\"|\"remove\")"`
	Status  string      `parser:"@Ident"`
	Amount  *int        `parser:"( \":\"? @Int )?"`
	Target  *TargetExpr `parser:"@@?"`
}

func (c *StatusCmd) Name() string { return strings.ToLower(c.Keyword) }

// ScanCmd carries no amount: drain, break, mend and shatter.
type ScanCmd struct {
	Keyword string      `parser:"@(\"drain\"|\"break\"|\"mend\"|\"shatter\")"`
	Target  *TargetExpr `parser:"@@?"`
}

func (c *ScanCmd) Name() string { return strings.ToLower(c.Keyword) }

// SpawnCmd puts a creature on the table, optionally from a template.
type SpawnCmd struct {
	Keyword  string `parser:"\"spawn\""`
	Creature string `parser:"@Ident"`
	Template string `parser:"( \"as\" \":\" @Ident )?"`
}

// DespawnCmd takes a creature off the table.
type DespawnCmd struct {
	Keyword  string `parser:"\"despawn\""`
	Creature string `parser:"@Ident"`
}

// RollCmd calculates a dice expression
type RollCmd struct {
	Keyword string     `parser:"\"roll\""`
	Dice    *DiceExpr  `parser:"@@"`
	Actor   *ActorExpr `parser:"@@?"`
}

// ShowCmd prints one creature, or every creature when none is named.
type ShowCmd struct {
	Keyword  string `parser:"\"show\""`
	Creature string `parser:"@Ident?"`
}

// CheckCmd evaluates a quoted expression against a creature.
type CheckCmd struct {
	Keyword    string      `parser:"\"check\""`
	Expression string      `parser:"@String"`
	Target     *TargetExpr `parser:"@@?"`
}

// HelpCmd provides guidance for one keyword or all of them
type HelpCmd struct {
	Keyword string `parser:"\"help\""`
	Command string `parser:"@Ident?"`
}

// TargetExpr maps parsing the optional "to: creature" block
type TargetExpr struct {
	Keyword string `parser:"\"to\" \":\""`
	Name    string `parser:"@Ident"`
}

// ActorExpr maps parsing the optional "by: creature" block
type ActorExpr struct {
	Keyword string `parser:"\"by\" \":\""`
	Name    string `parser:"@Ident"`
}

// DiceExpr is a plain integer or an RPG-style dice roll: NdS[kh|klN|a|d][+/-M]
type DiceExpr struct {
	Raw string `parser:"@(DiceMacro|Int)"`
}

// IsFlat reports whether the amount is a plain integer.
func (d *DiceExpr) IsFlat() bool {
	return !strings.ContainsAny(d.Raw, "dD")
}

// TargetName returns the named target or "" when the command omits it.
func TargetName(t *TargetExpr) string {
	if t == nil {
		return ""
	}
	return t.Name
}
