package llm

import "fmt"

// AnalyzePrompt asks for 2-3 concrete resume improvements.
func AnalyzePrompt(resumeText string) string {
	return fmt.Sprintf("You're a professional resume reviewer. Please analyze the following resume and suggest 2-3 specific improvements to make it more effective for job applications:\n\n%s", resumeText)
}

// MatchPrompt asks for a 0-100 match score, missing skills and improvements
// for a resume against a job description. Both texts are embedded verbatim.
func MatchPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`Compare the following resume and job description. Give a match score (0-100), list key missing skills, and suggest improvements.

Resume:
%s

Job Description:
%s
`, resumeText, jobDescription)
}
