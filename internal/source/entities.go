package source

import "strings"

// entityReplacer decodes the fixed entity set found in exported archives.
// It makes a single pass, so "&amp;lt;" decodes to "&lt;" and not "<".
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#039;", "'",
	"&#064;", "@",
	"&nbsp;", " ",
)

// DecodeEntities replaces &amp; &lt; &gt; &quot; &#039; &#064; and &nbsp; with their
// literal characters. Any other entity is left untouched.
func DecodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return entityReplacer.Replace(s)
}
