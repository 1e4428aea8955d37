package rss2maildir

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/emersion/go-message/mail"
	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
	"github.com/spf13/viper"
)

// Message is the normalized mail rendering of a single feed item.
type Message struct {
	FromName string
	Subject  string
	Date     time.Time
	Body     string
}

// itemDatetime picks the published timestamp of an item, falling back to the
// updated timestamp and finally to the current time.
func itemDatetime(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}

	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}

	return time.Now()
}

// htmlToText renders item markup to plain text. With keepLinks false,
// hyperlink and image targets are discarded entirely, only anchor text
// survives; with keepLinks true, links stay inline in markdown form.
func htmlToText(src string, keepLinks bool) (string, error) {
	converter := md.NewConverter("", true, nil)

	if !keepLinks {
		converter.AddRules(
			md.Rule{
				Filter: []string{"a"},
				Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
					return md.String(content)
				},
			},
			md.Rule{
				Filter: []string{"img"},
				Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
					return md.String("")
				},
			},
		)
	}

	text, err := converter.ConvertString(src)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}

// BuildMessage converts one feed item into a Message. The item's link, when
// present, is always appended as a trailing body line, independent of the
// links flag which only controls inline markup.
func BuildMessage(item *gofeed.Item, feedTitle string, links bool) (*Message, error) {
	var parts []string

	description := item.Description
	if description == "" {
		description = item.Content
	}

	if description != "" {
		text, err := htmlToText(description, links)
		if err != nil {
			return nil, err
		}

		parts = append(parts, text)
	}

	if item.Link != "" {
		parts = append(parts, item.Link)
	}

	fromName := feedTitle
	if fromName == "" {
		fromName = viper.GetString("mail.from.name")
	}

	return &Message{
		FromName: fromName,
		Subject:  html.UnescapeString(item.Title),
		Date:     itemDatetime(item).UTC(),
		Body:     strings.Join(parts, "\n"),
	}, nil
}

// Encode serializes the message to RFC 5322 bytes with a UTF-8 text/plain
// payload.
func (m *Message) Encode() (bytes.Buffer, error) {
	var b bytes.Buffer

	from := []*mail.Address{
		{
			Name:    m.FromName,
			Address: viper.GetString("mail.from.email"),
		},
	}
	to := []*mail.Address{
		{
			Name:    viper.GetString("mail.to.name"),
			Address: viper.GetString("mail.to.email"),
		},
	}

	mediaParams := map[string]string{"charset": "utf-8"}

	var h mail.Header
	h.SetContentType("text/plain", mediaParams)
	h.SetDate(m.Date)
	h.SetAddressList("From", from)
	h.SetAddressList("To", to)
	h.SetSubject(m.Subject)
	h.Set("Message-Id", fmt.Sprintf("<%s@rss2maildir>", uuid.New().String()))

	w, err := mail.CreateSingleInlineWriter(&b, h)
	if err != nil {
		return b, err
	}

	if _, err := io.WriteString(w, m.Body); err != nil {
		w.Close()
		return b, err
	}

	// the body encoder buffers until Close, so close before handing the
	// buffer back
	return b, w.Close()
}
