package services

import (
	"strings"

	"github.com/prospectr-app/prospectr/internal/core/domain"
)

// Rating keyword tiers, best first. A contact gets the rating of the first
// tier containing any keyword found in its title.
var ratingTiers = [][]string{
	{"SENIOR VICE PRESIDENT", "SVP", "VICE PRESIDENT", "VP", "PRESIDENT", "CHIEF", "DIRECTOR", "HEAD", "LEAD"},
	{"SENIOR MANAGER", "MANAGER", "COORDINATOR", "BUSINESS PARTNER"},
	{"ANALYST", "GENERALIST", "ASSISTANT", "SPECIALIST"},
}

// Priority function keywords. Position in the list sets the priority value,
// so earlier keywords win ties on smaller numbers.
var priorityFunctions = []string{
	"TALENT",
	"RECRUIT",
	"HIRING",
	"HUMAN RESOURCES",
	"HR",
}

// Qualify scores a contact's title against the rating tiers and the function
// keyword list, mutating rating and priority in place. An empty title leaves
// both values untouched, as does a title matching nothing.
func Qualify(c *domain.Contact) {
	if c.Title == "" {
		return
	}
	title := strings.ToUpper(c.Title)

	for tier, keywords := range ratingTiers {
		matched := false
		for _, kw := range keywords {
			if strings.Contains(title, kw) {
				c.Rating = tier + 1
				matched = true
				break
			}
		}
		if matched {
			break
		}
	}

	for i, fn := range priorityFunctions {
		if strings.Contains(title, fn) {
			c.Priority = i + 1
			break
		}
	}
}
