package ai

import (
	"fmt"
	"strings"

	"landmarket/internal/domain/service"
)

// maxEvidenceChars bounds how much evidence text is sent with a badge request.
const maxEvidenceChars = 24000

const ocrPrompt = `Extract all legible text from this document image.
Return only the extracted text, preserving line breaks. If there is no text, return an empty response.`

const authenticityPrompt = `You review photos submitted with land listings in Kenya.
Judge whether this image is a genuine, unedited photograph of a real parcel of land.
Flag stock photos, renders, heavy edits and images unrelated to land.
Respond with isAuthentic, a confidence between 0 and 1 and short notes.`

func badgePrompt(title string, evidence []string) string {
	var b strings.Builder

	b.WriteString("You grade the trustworthiness of land listings from their supporting documents.\n")
	b.WriteString("Badges: Gold (title deed plus search certificate and survey map that agree), ")
	b.WriteString("Silver (title deed with partial supporting documents), ")
	b.WriteString("Bronze (some ownership evidence but incomplete), ")
	b.WriteString("None (no usable ownership evidence).\n")
	fmt.Fprintf(&b, "Listing title: %s\n", title)

	if len(evidence) == 0 {
		b.WriteString("No documents were provided.\n")
	}

	budget := maxEvidenceChars
	for i, text := range evidence {
		if budget <= 0 {
			break
		}
		if len(text) > budget {
			text = text[:budget]
		}
		budget -= len(text)
		fmt.Fprintf(&b, "\n--- Document %d ---\n%s\n", i+1, text)
	}

	b.WriteString("\nReply with the badge and a one sentence reason.")

	return b.String()
}

func evidencePrompt(name, content string) string {
	if len(content) > maxEvidenceChars {
		content = content[:maxEvidenceChars]
	}

	return fmt.Sprintf(`Summarise the following land ownership document in at most three sentences.
List any suspicious patterns such as mismatched names, altered dates, missing stamps or inconsistent parcel numbers.
Document name: %s

%s`, name, content)
}

func descriptionPrompt(facts service.DescriptionFacts) string {
	var b strings.Builder

	b.WriteString("Write an engaging, factual description for a land listing in two short paragraphs.\n")
	b.WriteString("Do not invent facts that are not listed below.\n")
	fmt.Fprintf(&b, "Title: %s\n", facts.Title)
	if facts.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", facts.Location)
	}
	if facts.County != "" {
		fmt.Fprintf(&b, "County: %s\n", facts.County)
	}
	if facts.LandType != "" {
		fmt.Fprintf(&b, "Land type: %s\n", facts.LandType)
	}
	if facts.Area > 0 {
		fmt.Fprintf(&b, "Area: %.2f acres\n", facts.Area)
	}
	if facts.Size != "" {
		fmt.Fprintf(&b, "Size: %s\n", facts.Size)
	}
	if facts.Price > 0 {
		fmt.Fprintf(&b, "Price: KES %.0f\n", facts.Price)
	}
	if len(facts.Amenities) > 0 {
		fmt.Fprintf(&b, "Amenities: %s\n", strings.Join(facts.Amenities, ", "))
	}

	return b.String()
}
