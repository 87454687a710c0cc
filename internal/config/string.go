package config

import (
	"fmt"

	"github.com/atlanticdynamic/autodgm/internal/fancy"
	"github.com/charmbracelet/lipgloss/tree"
)

// String returns a one line summary of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("main event %d, %d round(s), weekly=%t", c.MainEventID, len(c.Rounds), c.IsWeeklies)
}

// ToTree renders the configuration as a tree
func (c *Config) ToTree() *tree.Tree {
	t := fancy.Tree()
	t.Root(fancy.EventText(fmt.Sprintf("Main event %d", c.MainEventID)))
	t.Child(fancy.BranchNode("Title", c.TitleTemplate))
	if c.Comment != "" {
		t.Child(fancy.BranchNode("Comment", c.Comment))
	}
	t.Child(fancy.BranchNode("Weekly", fmt.Sprintf("%t", c.IsWeeklies)))
	for i, r := range c.Rounds {
		t.Child(r.toTree(i + 1))
	}
	return t
}

func (r Round) toTree(index int) *tree.Tree {
	t := fancy.Tree()
	t.Root(fancy.RoundText(fmt.Sprintf("Round %d: %s", index, r.Title)))
	if start, ok := r.StartTimeOfDay(); ok {
		t.Child(fancy.BranchNode("Start", start.String()))
	}
	for _, g := range r.Groups {
		t.Child(fancy.BranchNode("Groups", fmt.Sprintf("%s-%s every %s", g.FirstTime, g.LastTime, g.Interval)))
	}
	if r.MaxPlayersInGroup > 0 {
		t.Child(fancy.BranchNode("Max players", fmt.Sprintf("%d", r.MaxPlayersInGroup)))
	}
	if r.Registration != nil && r.Registration.EndTime != nil {
		t.Child(fancy.BranchNode("Registration ends", r.Registration.EndTime.String()))
	}
	return t
}
