package posting

import "fmt"

// PostedLabel is shown in the detail header for every posting.
const PostedLabel = "Posted 2d ago"

// Responsibilities is the same for every posting.
var Responsibilities = []string{
	"Design and implement core features of the platform.",
	"Collaborate with cross-functional teams to define requirements.",
	"Maintain high standards of code quality and performance.",
	"Mentor junior members of the engineering team.",
}

// AboutTheRole returns the role summary. Only the title varies.
func AboutTheRole(p JobPosting) string {
	return fmt.Sprintf("We are looking for a %s to join our growing team. "+
		"You will be responsible for building out the next generation of tools that empower creators worldwide. "+
		"We value deep work, attention to detail, and a \"user-first\" mentality.", p.Title)
}
