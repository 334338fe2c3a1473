package artifact

import (
	"regexp"
	"strconv"
	"strings"
)

// Parsers for the Markdown heading contract the generation prompts demand.
// The model is instructed to emit every heading, writing "None." for empty
// sections, so parsing is positional over headings rather than semantic.

const nonePlaceholder = "None."

// Heading patterns from the prompt output contracts:
//
//	**Field:** value           - bold field line
//	### Section N: Title       - lesson section heading
//	### Question N             - assessment question heading
var (
	fieldPattern    = regexp.MustCompile(`^\*\*([^*]+):\*\*\s*(.*)$`)
	sectionPattern  = regexp.MustCompile(`^#{1,4}\s*Section\s+(\d+)\s*:?\s*(.*)$`)
	questionPattern = regexp.MustCompile(`^#{1,4}\s*Question\s+(\d+)\b`)
	numberedPattern = regexp.MustCompile(`^\d+[.)]\s*(.*)$`)
)

// ParseLesson maps raw lesson-plan Markdown into a LessonDocument.
// Unrecognized lines are appended to the field last seen, so multi-line
// values survive.
func ParseLesson(raw, subject, topic, grade string) *LessonDocument {
	doc := &LessonDocument{
		Subject: subject,
		Topic:   topic,
		Grade:   grade,
	}

	var current *LessonSection
	var lastField func(string)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := sectionPattern.FindStringSubmatch(line); m != nil {
			if current != nil {
				doc.Sections = append(doc.Sections, *current)
			}
			number, _ := strconv.Atoi(m[1])
			current = &LessonSection{Number: number, Title: cleanValue(m[2])}
			lastField = nil
			continue
		}

		if m := fieldPattern.FindStringSubmatch(line); m != nil {
			field := strings.ToLower(strings.TrimSpace(m[1]))
			value := cleanValue(m[2])
			switch {
			case current == nil && field == "title":
				doc.Title = value
				lastField = func(s string) { doc.Title = join(doc.Title, s) }
			case current == nil && field == "objective":
				doc.Objective = value
				lastField = func(s string) { doc.Objective = join(doc.Objective, s) }
			case current == nil && field == "materials":
				doc.Materials = value
				lastField = func(s string) { doc.Materials = join(doc.Materials, s) }
			case current != nil && field == "method":
				current.Method = value
				sec := current
				lastField = func(s string) { sec.Method = join(sec.Method, s) }
			case current != nil && field == "activities":
				current.Activities = value
				sec := current
				lastField = func(s string) { sec.Activities = join(sec.Activities, s) }
			case current != nil && strings.HasPrefix(field, "executive function"):
				current.ExecStrategy = value
				sec := current
				lastField = func(s string) { sec.ExecStrategy = join(sec.ExecStrategy, s) }
			default:
				lastField = nil
			}
			continue
		}

		if lastField != nil {
			lastField(line)
		}
	}

	if current != nil {
		doc.Sections = append(doc.Sections, *current)
	}
	return doc
}

// ParseAssessment maps raw assessment Markdown into an AssessmentDocument.
func ParseAssessment(raw, title, subject, topic, grade string) *AssessmentDocument {
	doc := &AssessmentDocument{
		Title:   title,
		Subject: subject,
		Topic:   topic,
		Grade:   grade,
	}

	var current *AssessmentQuestion
	var lastField func(string)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := questionPattern.FindStringSubmatch(line); m != nil {
			if current != nil {
				doc.Questions = append(doc.Questions, *current)
			}
			number, _ := strconv.Atoi(m[1])
			current = &AssessmentQuestion{Number: number}
			lastField = nil
			continue
		}

		if current == nil {
			continue
		}

		if m := fieldPattern.FindStringSubmatch(line); m != nil {
			field := strings.ToLower(strings.TrimSpace(m[1]))
			value := cleanValue(m[2])
			q := current
			switch {
			case field == "question type":
				q.Type = value
				lastField = func(s string) { q.Type = join(q.Type, s) }
			case field == "question":
				q.Question = value
				lastField = func(s string) { q.Question = join(q.Question, s) }
			case strings.HasPrefix(field, "executive function"):
				q.ExecStrategy = value
				lastField = func(s string) { q.ExecStrategy = join(q.ExecStrategy, s) }
			case field == "justification":
				q.Justification = value
				lastField = func(s string) { q.Justification = join(q.Justification, s) }
			default:
				lastField = nil
			}
			continue
		}

		if lastField != nil {
			lastField(line)
		}
	}

	if current != nil {
		doc.Questions = append(doc.Questions, *current)
	}
	return doc
}

// ParseIcebreaker maps raw icebreaker Markdown into an IcebreakerDocument.
// Instruction steps are collected from numbered lines under the
// Instructions heading.
func ParseIcebreaker(raw string) *IcebreakerDocument {
	doc := &IcebreakerDocument{}

	var inInstructions bool
	var lastField func(string)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := fieldPattern.FindStringSubmatch(line); m != nil {
			field := strings.ToLower(strings.TrimSpace(m[1]))
			value := cleanValue(m[2])
			inInstructions = false
			switch field {
			case "title":
				doc.Title = value
				lastField = func(s string) { doc.Title = join(doc.Title, s) }
			case "objective":
				doc.Objective = value
				lastField = func(s string) { doc.Objective = join(doc.Objective, s) }
			case "materials":
				doc.Materials = value
				lastField = func(s string) { doc.Materials = join(doc.Materials, s) }
			case "instructions":
				inInstructions = true
				lastField = nil
			case "debrief":
				doc.Debrief = value
				lastField = func(s string) { doc.Debrief = join(doc.Debrief, s) }
			case "tips":
				doc.Tips = value
				lastField = func(s string) { doc.Tips = join(doc.Tips, s) }
			default:
				lastField = nil
			}
			continue
		}

		if inInstructions {
			if m := numberedPattern.FindStringSubmatch(line); m != nil {
				doc.Instructions = append(doc.Instructions, cleanValue(m[1]))
				continue
			}
		}

		if lastField != nil {
			lastField(line)
		}
	}

	return doc
}

// cleanValue strips the "None." placeholder to an empty value.
func cleanValue(s string) string {
	s = strings.TrimSpace(s)
	if s == nonePlaceholder || s == "None" {
		return ""
	}
	return s
}

func join(existing, next string) string {
	if existing == "" {
		return next
	}
	return existing + "\n" + next
}
