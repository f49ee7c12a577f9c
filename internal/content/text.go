package content

var (
	HeroTagline = `I build fast, accessible web applications and enjoy turning rough ideas
	into products people actually use.`

	AboutMe = `Hello! I'm Rajeev Verma, a creative and detail-oriented full-stack developer who
	loves building software that is both useful and fun. With expertise in React, Node.js
	and MongoDB, I create scalable applications that feel good to use. Most of my projects
	start with a simple idea and turn into a chance to learn something new, whether it's
	exploring a different language, experimenting with tools, or solving tricky problems.`

	ContactBlurb = `I'm always open to discussing new projects, creative ideas, or opportunities
	to be part of your visions.`
)
