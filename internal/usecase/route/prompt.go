package route

import "fmt"

// promptTemplate instructs the model to either answer directly or reply with
// exactly one route token. Kept verbatim: the exact-match gate on receipt
// depends on the model following the "no extra text" instruction.
const promptTemplate = "You are a helpful assistant. The user asked:\n\"%s\"\n\n" +
	"— If you can answer this directly, just give the answer.\n" +
	"— Otherwise reply exactly GOOGLE or YOUTUBE (no extra text)."

// Prompt embeds the query into the fixed classifier instruction template.
func Prompt(query string) string {
	return fmt.Sprintf(promptTemplate, query)
}
