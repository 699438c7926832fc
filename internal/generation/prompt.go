package generation

import (
	"fmt"
	"strings"
)

// Synthesize builds the generation prompt for a normalized request. The
// output is a pure function of the request: fixed header, labeled detail
// lines, optional lines in a fixed order (reason, start date, end date),
// and a fixed requirements block.
func Synthesize(req Request) string {
	var b strings.Builder

	lang := req.Language.PromptName()
	tone := req.Tone.Description()

	fmt.Fprintf(&b, "Generate a complete %s in %s language.\n\n", req.Type.Key, lang)

	b.WriteString("Document Details:\n")
	fmt.Fprintf(&b, "- Type: %s\n", req.Type.Key)
	fmt.Fprintf(&b, "- Language: %s\n", lang)
	fmt.Fprintf(&b, "- Tone: %s\n", tone)
	fmt.Fprintf(&b, "- Sender: %s\n", req.SenderName)
	fmt.Fprintf(&b, "- Recipient: %s\n", req.RecipientName)
	fmt.Fprintf(&b, "- Purpose: %s\n", req.Purpose)

	if req.Reason != nil {
		fmt.Fprintf(&b, "- Reason/Additional Details: %s\n", *req.Reason)
	}
	if req.DateFrom != nil {
		fmt.Fprintf(&b, "- Start Date: %s\n", req.DateFrom.Format(DateLayout))
	}
	if req.DateTo != nil {
		fmt.Fprintf(&b, "- End Date: %s\n", req.DateTo.Format(DateLayout))
	}

	b.WriteString("\nRequirements:\n")
	fmt.Fprintf(&b, "1. Create a properly formatted %s with appropriate headers, salutations, and closings\n", req.Type.Key)
	fmt.Fprintf(&b, "2. Use %s tone throughout\n", tone)
	b.WriteString("3. Include all necessary details based on the purpose provided\n")
	b.WriteString("4. Follow standard format for this type of document\n")
	b.WriteString("5. Make it professional and complete\n")
	b.WriteString("6. Include proper date formatting and addressing\n")
	b.WriteString("7. If writing in Hindi or Marathi, use proper script and formal language conventions\n")
	b.WriteString("8. End with appropriate closing and signature line\n")
	b.WriteString("\nGenerate the complete document content now:")

	return b.String()
}
