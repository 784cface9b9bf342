package textcv

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/portfolio-cv/internal/types"
)

var (
	// trailing "(2020 - 2023)" on entry headings
	trailingDatesPattern = regexp.MustCompile(`\s*\(([^()]*\d[^()]*)\)\s*$`)
	phonePattern         = regexp.MustCompile(`^\+?[\d\s().-]{7,}$`)
	contactSplitPattern  = regexp.MustCompile(`\s*[·|]\s*`)
)

// titleSeparators split "Role — Company" style headings, first match wins
var titleSeparators = []string{" — ", " – ", " - ", " at ", " @ ", ", "}

// Normalize maps a parsed plain-text CV onto the base résumé model.
//
// The first two non-blank header lines are the name and title. Contact
// lines are classified as email, phone, profile link or location. In the
// experience sections a paragraph line opens an entry and bullets attach
// to it; bullets that appear before any entry, and every entry of the
// Projects section, become projects. The Note section is not carried over.
func Normalize(doc *Document) *types.ResumeData {
	data := &types.ResumeData{
		Summaries:      map[string]string{},
		Experience:     []types.Experience{},
		Education:      []types.Education{},
		Certifications: []types.Certification{},
		Projects:       []types.Project{},
		Achievements:   []types.Achievement{},
	}

	header := doc.NonBlank(SectionHeader)
	if len(header) > 0 {
		data.Personal.Name = header[0]
	}
	if len(header) > 1 {
		data.Personal.Title = header[1]
	}
	normalizeContact(&data.Personal, doc.NonBlank(SectionContact))

	if summary := strings.Join(doc.NonBlank(SectionSummary), " "); summary != "" {
		data.Summaries[types.DefaultVariant] = summary
	}
	data.Skills = normalizeSkills(doc.NonBlank(SectionSkills))

	b := &entryBuilder{data: data}
	for _, section := range []string{SectionExperienceProjects, SectionExperience} {
		b.experience(doc.Lines(section))
	}
	b.projects(doc.Lines(SectionProjects))
	data.Education = normalizeEducation(doc.Lines(SectionEducation))
	data.Certifications = normalizeCertifications(doc.NonBlank(SectionCertifications))

	return data
}

func normalizeContact(p *types.Personal, lines []string) {
	for _, line := range lines {
		for _, item := range contactSplitPattern.Split(line, -1) {
			item = strings.TrimSpace(item)
			lower := strings.ToLower(item)
			switch {
			case item == "":
			case strings.Contains(item, "@") && !strings.Contains(item, "/"):
				setOnce(&p.Email, strings.TrimPrefix(item, "mailto:"))
			case strings.Contains(lower, "github.com"):
				setOnce(&p.GitHub, withScheme(item))
			case strings.Contains(lower, "linkedin.com"):
				setOnce(&p.LinkedIn, withScheme(item))
			case strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "www."):
				setOnce(&p.Portfolio, withScheme(item))
				setOnce(&p.Website, withScheme(item))
			case phonePattern.MatchString(item):
				setOnce(&p.Phone, item)
			default:
				setOnce(&p.Location, item)
			}
		}
	}
}

func normalizeSkills(lines []string) types.Skills {
	var skills types.Skills
	for _, line := range lines {
		target := &skills.Technical
		if label, rest, ok := strings.Cut(line, ":"); ok {
			switch strings.ToLower(strings.TrimSpace(label)) {
			case "tools":
				target, line = &skills.Tools, rest
			case "soft", "soft skills":
				target, line = &skills.Soft, rest
			case "technical", "languages", "frameworks":
				line = rest
			}
		}
		for _, item := range strings.Split(line, ",") {
			item = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(item), "-•*"))
			if item != "" {
				*target = append(*target, item)
			}
		}
	}
	return skills
}

type entryBuilder struct {
	data    *types.ResumeData
	current *types.Experience
	project *types.Project
}

func (b *entryBuilder) experience(lines []Line) {
	b.current = nil
	for _, l := range lines {
		switch {
		case l.Blank:
			b.current = nil
		case !l.Bullet:
			role, company, dates := splitHeading(l.Text)
			b.data.Experience = append(b.data.Experience, types.Experience{
				ID:          fmt.Sprintf("e%d", len(b.data.Experience)+1),
				Role:        role,
				Company:     company,
				Dates:       dates,
				Description: []string{},
			})
			b.current = &b.data.Experience[len(b.data.Experience)-1]
		case b.current != nil:
			b.current.Description = append(b.current.Description, l.Text)
		default:
			b.bulletProject(l.Text)
		}
	}
	b.current = nil
}

func (b *entryBuilder) projects(lines []Line) {
	b.project = nil
	for _, l := range lines {
		switch {
		case l.Blank:
			b.project = nil
		case l.Bullet && b.project != nil && !strings.Contains(l.Text, ":"):
			b.project.Description = joinSentence(b.project.Description, l.Text)
		case l.Bullet:
			b.bulletProject(l.Text)
		case b.project == nil:
			b.addProject(l.Text, "")
		default:
			b.project.Description = joinSentence(b.project.Description, l.Text)
		}
	}
	b.project = nil
}

// bulletProject turns "- Title: description" into a project.
func (b *entryBuilder) bulletProject(text string) {
	title, desc, ok := strings.Cut(text, ":")
	if !ok {
		title, desc = text, ""
	}
	b.addProject(strings.TrimSpace(title), strings.TrimSpace(desc))
}

func (b *entryBuilder) addProject(title, description string) {
	p := types.Project{
		ID:          fmt.Sprintf("p%d", len(b.data.Projects)+1),
		Title:       title,
		Description: description,
	}
	if url := findURL(title + " " + description); url != "" {
		p.Link = url
	}
	b.data.Projects = append(b.data.Projects, p)
	b.project = &b.data.Projects[len(b.data.Projects)-1]
}

func normalizeEducation(lines []Line) []types.Education {
	out := []types.Education{}
	for _, l := range lines {
		switch {
		case l.Blank:
		case l.Bullet && len(out) > 0:
			last := &out[len(out)-1]
			last.Highlights = append(last.Highlights, l.Text)
		default:
			degree, institution, dates := splitHeading(l.Text)
			out = append(out, types.Education{Degree: degree, Institution: institution, Dates: dates})
		}
	}
	return out
}

func normalizeCertifications(lines []string) []types.Certification {
	out := []types.Certification{}
	for i, line := range lines {
		name, issuer, date := splitHeading(line)
		out = append(out, types.Certification{
			ID:     fmt.Sprintf("c%d", i+1),
			Name:   name,
			Issuer: issuer,
			Date:   date,
		})
	}
	return out
}

// splitHeading splits "Title — Org | dates" or "Title — Org (dates)".
func splitHeading(line string) (title, org, dates string) {
	line = strings.TrimSpace(line)
	if before, after, ok := cutLast(line, " | "); ok {
		line, dates = before, after
	} else if m := trailingDatesPattern.FindStringSubmatchIndex(line); m != nil {
		dates = line[m[2]:m[3]]
		line = line[:m[0]]
	}

	for _, sep := range titleSeparators {
		if before, after, ok := strings.Cut(line, sep); ok {
			return strings.TrimSpace(before), strings.TrimSpace(after), strings.TrimSpace(dates)
		}
	}
	return line, "", strings.TrimSpace(dates)
}

func cutLast(s, sep string) (before, after string, found bool) {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+len(sep):]), true
	}
	return s, "", false
}

func findURL(text string) string {
	for _, field := range strings.Fields(text) {
		lower := strings.ToLower(field)
		if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
			return strings.TrimRight(field, ".,;)")
		}
	}
	return ""
}

func withScheme(link string) string {
	lower := strings.ToLower(link)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return link
	}
	return "https://" + link
}

func joinSentence(a, b string) string {
	if a == "" {
		return b
	}
	return a + " " + b
}

func setOnce(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
