package chatbot

import (
	"fmt"
	"strings"

	"github.com/Pablo751/3mchatbot/internal/catalog"
	"github.com/Pablo751/3mchatbot/internal/conversation"
)

// The bot serves Spanish-speaking dental professionals; every prompt and
// user-facing string stays in Spanish.

const generationSystemPrompt = `Eres un experto en productos dentales de 3M. Proporciona respuestas precisas y profesionales
basadas en la información proporcionada y el contexto de la conversación. Si la pregunta es una
contrapregunta sobre el producto actual, enfócate en responder específicamente esa duda.
Si la información requerida no está disponible, sugiere visitar el enlace de 'Más información'.`

func selectionSystemPrompt(count int) string {
	return fmt.Sprintf("Eres un asistente dental. Debes responder SOLO con el número del producto más relevante (0-%d) o -1 si no hay match.", count-1)
}

func selectionUserPrompt(cat *catalog.Store, query string) string {
	var sb strings.Builder
	sb.WriteString("PRODUCTOS:\n")
	for i := 0; i < cat.Count(); i++ {
		p := cat.Get(i)
		fmt.Fprintf(&sb, "%d. %s - %s\n", i, p.Name, p.MainObjective)
	}
	fmt.Fprintf(&sb, "\nCONSULTA: %s\n\nResponde SOLO con el número:", query)
	return sb.String()
}

func generationUserPrompt(p catalog.ProductRecord, recent []conversation.Turn, query string) string {
	productContext := fmt.Sprintf(
		"Información del producto:\n"+
			"Nombre: %s\n"+
			"Objetivo: %s\n"+
			"Instrucciones: %s\n"+
			"Ventajas: %s\n"+
			"Presentación: %s\n"+
			"Más información: %s",
		p.Name, p.MainObjective, p.UsageInstructions, p.Advantages, p.Presentation, p.MoreInfoLink)

	var lines []string
	for _, t := range recent {
		speaker := "Asistente"
		if t.IsUser {
			speaker = "Usuario"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", speaker, t.Text))
	}

	return fmt.Sprintf("Contexto del producto:\n%s\n\nConversación reciente:\n%s\n\nPregunta actual del usuario: %s",
		productContext, strings.Join(lines, "\n"), query)
}
