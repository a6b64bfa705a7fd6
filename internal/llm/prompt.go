package llm

import (
	"fmt"
	"strings"
)

// BuildExtractionPrompt asks the model to fill the candidate schema from the
// attached resume.
func BuildExtractionPrompt(schemaJSON string) string {
	return fmt.Sprintf(`Use the following JSON schema describing the information I need to extract. Please extract the properties defined in the JSON schema:
%s
Provide the result in a structured JSON format. Please remove any `+"```json ```"+` characters from the output.`, schemaJSON)
}

// BuildJobMatchPrompt asks the model to grade every skill against a job
// position, with reasoning and a 0-10 proficiency grounded in years of use.
func BuildJobMatchPrompt(skills []string, jobPosition, company, schemaJSON string) string {
	perSkill := make([]string, 0, len(skills))
	for _, skill := range skills {
		perSkill = append(perSkill, fmt.Sprintf(
			"Given this skill: %s, please provide your reasoning for why this skill matters to the following job position: %s at %s. If the skill is not relevant please say so. Based on the years the candidate worked using this skill, provide an integer proficiency level from 0 to 10.",
			skill, jobPosition, company,
		))
	}

	return fmt.Sprintf(`%s
Please use the following schema: %s
Provide the result in a structured JSON format. Please remove any `+"```json ```"+` characters from the output.`, strings.Join(perSkill, "\n"), schemaJSON)
}
