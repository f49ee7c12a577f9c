// Package content holds the portfolio's section data.
package content

import (
	"errors"
	"fmt"
	"strings"
)

// SectionID identifies a page section. The order of Order is the page order.
type SectionID string

const (
	SectionHome     SectionID = "home"
	SectionAbout    SectionID = "about"
	SectionProjects SectionID = "projects"
	SectionSkills   SectionID = "skills"
	SectionResume   SectionID = "resume"
	SectionContact  SectionID = "contact"
)

// Order is the top-to-bottom section order.
var Order = []SectionID{SectionHome, SectionAbout, SectionProjects, SectionSkills, SectionResume, SectionContact}

// ErrUnknownFilter is returned for a project or skill filter that does not exist.
var ErrUnknownFilter = errors.New("unknown filter")

// Section is one block of the page.
type Section struct {
	ID    SectionID `json:"id"`
	Title string    `json:"title"`
	Data  any       `json:"data"`
}

// Hero is the landing block shown above the fold.
type Hero struct {
	Name    string   `json:"name"`
	Roles   []string `json:"roles"`
	Tagline string   `json:"tagline"`
}

// Stat is one highlighted figure in the about section.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// About is the about-me section.
type About struct {
	Headline string `json:"headline"`
	Body     string `json:"body"`
	Stats    []Stat `json:"stats"`
}

// Project is one portfolio entry. Category drives the project filters.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	Repository  string   `json:"repository"`
	Demo        string   `json:"demo,omitempty"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Featured    bool     `json:"featured"`
}

// Skill is one technology badge, grouped by Category.
type Skill struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	Category string `json:"category"`
}

// Experience is one resume job entry.
type Experience struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Period      string   `json:"period"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

// Education is one resume degree entry.
type Education struct {
	Degree       string   `json:"degree"`
	Institution  string   `json:"institution"`
	Period       string   `json:"period"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// Certification is one credential listed on the resume.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// Resume is the resume section.
type Resume struct {
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Certifications []Certification `json:"certifications"`
	Download       string          `json:"download"`
}

// Link is a contact channel or social profile.
type Link struct {
	Title string `json:"title"`
	Value string `json:"value,omitempty"`
	URL   string `json:"url"`
}

// Contact is the contact section: blurb plus reachable channels.
type Contact struct {
	Blurb    string `json:"blurb"`
	Channels []Link `json:"channels"`
	Social   []Link `json:"social"`
}

// Filter is a selectable project or skill category.
type Filter struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ProjectFilters are the project tabs; "all" and "featured" are special.
var ProjectFilters = []Filter{
	{ID: "all", Label: "All Projects"},
	{ID: "featured", Label: "Featured"},
	{ID: "fullstack", Label: "Full Stack"},
	{ID: "frontend", Label: "Frontend"},
	{ID: "backend", Label: "Backend"},
	{ID: "ai-ml", Label: "AI/ML"},
}

// SkillFilters are the skill tabs.
var SkillFilters = []Filter{
	{ID: "all", Label: "All Skills"},
	{ID: "frontend", Label: "Frontend"},
	{ID: "backend", Label: "Backend"},
	{ID: "database", Label: "Database"},
	{ID: "tools", Label: "Tools"},
}

// Sections returns every section in page order.
func Sections() []Section {
	out := make([]Section, 0, len(Order))
	for _, id := range Order {
		s, _ := Lookup(id)
		out = append(out, s)
	}
	return out
}

// Lookup returns the section with the given id.
func Lookup(id SectionID) (Section, bool) {
	switch id {
	case SectionHome:
		return Section{ID: id, Title: "Home", Data: hero()}, true
	case SectionAbout:
		return Section{ID: id, Title: "About Me", Data: about()}, true
	case SectionProjects:
		return Section{ID: id, Title: "Featured Projects", Data: projects}, true
	case SectionSkills:
		return Section{ID: id, Title: "Skills & Technologies", Data: skills}, true
	case SectionResume:
		return Section{ID: id, Title: "Resume", Data: resume}, true
	case SectionContact:
		return Section{ID: id, Title: "Let's Connect", Data: contact()}, true
	}
	return Section{}, false
}

// Projects returns the projects matching filter.
func Projects(filter string) ([]Project, error) {
	switch filter {
	case "", "all":
		return append([]Project(nil), projects...), nil
	case "featured":
		out := []Project{}
		for _, p := range projects {
			if p.Featured {
				out = append(out, p)
			}
		}
		return out, nil
	}
	if !known(ProjectFilters, filter) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, filter)
	}
	out := []Project{}
	for _, p := range projects {
		if p.Category == filter {
			out = append(out, p)
		}
	}
	return out, nil
}

// Skills returns the skills in category.
func Skills(category string) ([]Skill, error) {
	if category == "" || category == "all" {
		return append([]Skill(nil), skills...), nil
	}
	if !known(SkillFilters, category) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, category)
	}
	out := []Skill{}
	for _, s := range skills {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out, nil
}

func known(filters []Filter, id string) bool {
	for _, f := range filters {
		if f.ID == id {
			return true
		}
	}
	return false
}

// clean collapses the indentation carried by the raw strings in text.go.
func clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func hero() Hero {
	return Hero{
		Name:    "Rajeev Verma",
		Roles:   []string{"MERN Stack Developer", "Frontend Specialist", "Creative Problem Solver"},
		Tagline: clean(HeroTagline),
	}
}

func about() About {
	return About{
		Headline: "Passionate Full-Stack Developer",
		Body:     clean(AboutMe),
		Stats: []Stat{
			{Label: "Months Experience", Value: "6+"},
			{Label: "Projects Completed", Value: "7+"},
		},
	}
}

func contact() Contact {
	return Contact{
		Blurb: clean(ContactBlurb),
		Channels: []Link{
			{Title: "Email", Value: "rv1175544@gmail.com", URL: "mailto:rv1175544@gmail.com"},
			{Title: "Location", Value: "Mumbai, India", URL: "/"},
		},
		Social: []Link{
			{Title: "GitHub", URL: "https://github.com/Rajeevgithu"},
			{Title: "LinkedIn", URL: "https://www.linkedin.com/in/rajeev-verma7276/"},
			{Title: "Instagram", URL: "https://www.instagram.com/rajeev__verma_04/"},
			{Title: "X", URL: "https://x.com/RajeevVerma45"},
		},
	}
}

var projects = []Project{
	{
		Title:       "Deepfake Detection Frontend",
		Description: "Advanced React-based frontend for detecting and visualizing deepfake content using TensorFlow.js. Features real-time analysis, interactive visualizations, and user-friendly interface.",
		Tech:        []string{"React", "TensorFlow.js", "Tailwind CSS", "Framer Motion"},
		Repository:  "https://github.com/Rajeevgithu/Deepfake-Detection",
		Demo:        "https://deepfake-detection-lh9w.vercel.app/",
		Image:       "images/Deep-fake.png",
		Category:    "ai-ml",
		Featured:    true,
	},
	{
		Title:       "E-Commerce Platform",
		Description: "Full-stack e-commerce solution with cart management, product filtering, user authentication, payment integration, and admin dashboard.",
		Tech:        []string{"React", "Node.js", "MongoDB", "Express.js", "Stripe"},
		Repository:  "https://github.com/Rajeevgithu/E-Commerce-Website",
		Demo:        "https://e-commerce-website-dsnj.vercel.app/",
		Image:       "images/E-Commerce.png",
		Category:    "fullstack",
		Featured:    true,
	},
	{
		Title:       "Budget Tracker (Infosys)",
		Description: "Finance tracking application developed during the Infosys Springboard internship. Features expense categorization, budget planning, and financial insights.",
		Tech:        []string{"Django", "SQLite", "Bootstrap", "Chart.js"},
		Repository:  "https://github.com/Springboard-Internship-2024/Budget-Tracker_Feb_2025",
		Image:       "images/budget-tracker.png",
		Category:    "backend",
	},
	{
		Title:       "Portfolio Website",
		Description: "Responsive portfolio website with 3D animations and interactive elements.",
		Tech:        []string{"React + Vite", "Three.js", "Tailwind CSS", "Framer Motion"},
		Repository:  "https://github.com/Rajeevgithu/portfolio",
		Demo:        "https://rajeev-portfolio-49.vercel.app/",
		Image:       "images/Portfolio.png",
		Category:    "frontend",
	},
	{
		Title:       "3D Solar System",
		Description: "A 3D solar system built with Three.js, including the planets, moons, and stars.",
		Tech:        []string{"Three.js", "React", "Tailwind CSS", "Framer Motion"},
		Repository:  "https://github.com/Rajeevgithu/3d-Solar-System",
		Demo:        "https://3d-solar-system-eight.vercel.app/",
		Image:       "images/3d-solar-system.png",
		Category:    "frontend",
	},
	{
		Title:       "react-calender-app",
		Description: "A calendar application with event management and a responsive UI.",
		Tech:        []string{"React", "Tailwind CSS", "Framer Motion"},
		Repository:  "https://github.com/Rajeevgithu/React-Calender-App",
		Demo:        "https://react-calender-app-psi.vercel.app/",
		Image:       "images/calender.png",
		Category:    "frontend",
	},
	{
		Title:       "admybrand-landing-page",
		Description: "A responsive landing page for a brand.",
		Tech:        []string{"React", "Tailwind CSS", "Framer Motion"},
		Repository:  "https://github.com/Rajeevgithu/ADMYBRAND-Landing",
		Demo:        "https://admybrand-landing-page-psi.vercel.app/",
		Image:       "images/admybrand.png",
		Category:    "frontend",
	},
}

var skills = []Skill{
	{Name: "React", Color: "#61DAFB", Category: "frontend"},
	{Name: "JavaScript", Color: "#F0DB4F", Category: "frontend"},
	{Name: "HTML5", Color: "#E34C26", Category: "frontend"},
	{Name: "CSS3", Color: "#264de4", Category: "frontend"},
	{Name: "Tailwind", Color: "#38BDF8", Category: "frontend"},
	{Name: "Node.js", Color: "#3C873A", Category: "backend"},
	{Name: "Express", Color: "#ffffff", Category: "backend"},
	{Name: "MongoDB", Color: "#4DB33D", Category: "database"},
	{Name: "Git", Color: "#F1502F", Category: "tools"},
}

var resume = Resume{
	Experience: []Experience{
		{
			Title:       "Full Stack Developer",
			Company:     "Freelance",
			Period:      "May-25 - June-25",
			Description: "Developed and maintained multiple web applications using React, Node.js, and MongoDB. Collaborated with clients to deliver high-quality, scalable solutions.",
			Skills:      []string{"React + Vite", "Node.js", "MongoDB", "Express.js", "JavaScript"},
		},
		{
			Title:       "Full Stack Developer Intern",
			Company:     "Infosys Springboard",
			Period:      "Jan-25 - Feb-25",
			Description: "Developed a budget tracking application using Django. Implemented database design, API development, and user authentication.",
			Skills:      []string{"Django", "Python", "SQLite", "Bootstrap", "Chart.js"},
		},
	},
	Education: []Education{
		{
			Degree:       "B.E. in Computer Science & Engineering (AI & ML) with Honours in Data Science",
			Institution:  "University Of Mumbai",
			Period:       "2021 - 2025",
			Description:  "Graduated with distinction and 8.02 CGPA.",
			Achievements: []string{"Participant, Smart India Hackathon 2025 (Deepfake Detection System using pretrained AI/ML models)"},
		},
		{
			Degree:       "Full Stack Web Development",
			Institution:  "Udemy",
			Period:       "2023 - 2024",
			Description:  "Completed courses in modern web development technologies and best practices.",
			Achievements: []string{"MERN Stack Certification", "React Advanced Concepts", "Node.js Backend Development"},
		},
	},
	Certifications: []Certification{
		{Name: "MERN Stack Development", Issuer: "Udemy", Year: "2024"},
		{Name: "React Advanced Concepts", Issuer: "Coursera", Year: "2023"},
		{Name: "Node.js Backend Development", Issuer: "Udemy", Year: "2024"},
		{Name: "MongoDB Database Design", Issuer: "MongoDB University", Year: "2025"},
	},
	Download: "/static/Resume.pdf",
}
