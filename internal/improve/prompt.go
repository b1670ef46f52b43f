package improve

import "fmt"

// buildImproveSystemPrompt creates the system prompt for rewriting a prompt.
func buildImproveSystemPrompt() string {
	return `Eres un experto en ingeniería de prompts para IAs. Tu tarea es analizar y mejorar prompts para que sean más efectivos, claros y precisos.

Principios para mejorar prompts:
1. Claridad: Usar lenguaje específico y sin ambigüedades
2. Estructura: Organizar la información de manera lógica
3. Contexto: Proporcionar contexto relevante y suficiente
4. Especificidad: Definir exactamente qué se espera como resultado
5. Formato: Especificar claramente el formato de salida deseado

Analiza el prompt proporcionado y devuelve una versión mejorada que mantenga la intención original pero sea más efectiva.`
}

// buildImproveUserPrompt wraps the prompt to improve.
func buildImproveUserPrompt(prompt string) string {
	return fmt.Sprintf(`Por favor, mejora este prompt:

%s

Devuelve únicamente la versión mejorada del prompt, sin explicaciones adicionales.`, prompt)
}

// buildSuggestSystemPrompt creates the system prompt for suggestion lists.
func buildSuggestSystemPrompt() string {
	return `Eres un asistente especializado en generar sugerencias para prompts efectivos.
Basándote en el tema y objetivo proporcionados, genera 3-5 sugerencias breves y específicas para mejorar el prompt.`
}

// buildSuggestUserPrompt names the theme and objective to suggest for.
func buildSuggestUserPrompt(theme, objective string) string {
	return fmt.Sprintf(`Tema: %s
Objetivo: %s

Genera sugerencias específicas para mejorar un prompt con este tema y objetivo.
Devuelve solo una lista de sugerencias, una por línea, sin numeración.`, theme, objective)
}
