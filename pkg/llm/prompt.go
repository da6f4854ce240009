package llm

import "fmt"

const extractionPromptTemplate = `Extract ALL information from the following resume text. Return a JSON object with these fields:

PERSONAL INFO:
- firstName (string): First name
- lastName (string): Last name
- email (string): Email address
- phone (string): Phone number
- currentTitle (string): Current/most recent job title
- currentCompany (string): Current/most recent company
- location (string): City/location
- linkedinUrl (string): LinkedIn URL if present
- portfolioUrl (string): Portfolio/website URL if present
- summary (string): Professional summary/objective if present

SKILLS (array of objects):
- skills: [{ name: string, proficiencyLevel: "beginner"|"intermediate"|"advanced"|"expert", yearsOfExperience: number|null }]
  Extract ALL technical skills, programming languages, frameworks, tools, soft skills mentioned

EDUCATION (array of objects):
- education: [{
    institutionName: string,
    degreeName: string (e.g., "Bachelor of Technology", "Master of Science"),
    fieldOfStudy: string (e.g., "Computer Science", "Electronics"),
    startDate: string (YYYY-MM format or year),
    endDate: string (YYYY-MM format or year, "Present" if current),
    gpa: number|null,
    percentage: number|null,
    honors: string|null,
    description: string|null
  }]

EXPERIENCE (array of objects):
- experience: [{
    companyName: string,
    title: string,
    location: string|null,
    startDate: string (YYYY-MM format or year),
    endDate: string (YYYY-MM format or year, "Present" if current),
    isCurrent: boolean,
    description: string (full job description),
    responsibilities: string[] (list of responsibilities),
    achievements: string[] (list of achievements/accomplishments)
  }]

PROJECTS (array of objects):
- projects: [{
    name: string,
    description: string,
    role: string|null,
    technologies: string[] (technologies used),
    url: string|null,
    startDate: string|null,
    endDate: string|null
  }]

CERTIFICATIONS (array of objects):
- certifications: [{ name: string, issuer: string, date: string|null, url: string|null }]

Extract EVERYTHING mentioned in the resume. Do not skip any detail.

Resume text:
%s

Return ONLY valid JSON, no explanation.`

// BuildExtractionPrompt embeds up to maxChars of resume text into the fixed
// extraction schema prompt. The "ONLY valid JSON" instruction is a hint, not
// a guarantee; replies still go through ExtractJSONObject.
func BuildExtractionPrompt(text string, maxChars int) string {
	if maxChars > 0 && len(text) > maxChars {
		text = text[:maxChars]
	}
	return fmt.Sprintf(extractionPromptTemplate, text)
}
