package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"predictive-disease-detection/internal/feedback"
)

// FeedbackView is the Feedback & Contact page.
type FeedbackView struct {
	Message string
	Rating  int
	Entries []feedback.Entry
}

// ContactEmail is listed on the Feedback & Contact page.
const ContactEmail = "support@predictive-disease-detection.app"

// FeedbackPage renders the form and the visitor's previous messages.
func FeedbackPage(v FeedbackView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<h1>Feedback &amp; Contact</h1><p>Questions or suggestions? Write to <a href="mailto:`, attr(ContactEmail), `">`)
		h.text(ContactEmail)
		h.raw(`</a> or leave a message below.</p><form method="post" action="/feedback"><label>Message<textarea name="message" rows="5">`)
		h.text(v.Message)
		h.raw(`</textarea></label><label>Rating<select name="rating"><option value="0">No rating</option>`)
		for i := 1; i <= 5; i++ {
			n := strconv.Itoa(i)
			selected := ""
			if v.Rating == i {
				selected = " selected"
			}
			h.raw(`<option value="`, n, `"`, selected, `>`, n, `</option>`)
		}
		h.raw(`</select></label><button type="submit">Send Feedback</button></form>`)

		if len(v.Entries) > 0 {
			h.raw(`<h2>Your messages</h2><ul class="feedback">`)
			for _, e := range v.Entries {
				h.raw(`<li><time>`)
				h.text(e.CreatedAt.Format("2006-01-02 15:04"))
				h.raw(`</time> `)
				if e.Rating > 0 {
					h.text(strconv.Itoa(e.Rating) + "/5 -")
					h.raw(` `)
				}
				h.text(e.Message)
				h.raw(`</li>`)
			}
			h.raw(`</ul>`)
		}
		return h.err
	})
}
