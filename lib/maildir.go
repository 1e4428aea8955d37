package rss2maildir

import (
	"log"

	"github.com/emersion/go-maildir"
	"github.com/spf13/viper"
)

// Delivery durably stores one normalized message into a destination maildir.
// Duplicate suppression is the dedup engine's job, not the delivery's.
type Delivery interface {
	Deliver(dir string, msg *Message) error
}

type maildirDelivery struct{}

// NewMaildirDelivery returns the maildir-backed Delivery.
func NewMaildirDelivery() Delivery {
	return &maildirDelivery{}
}

func (d *maildirDelivery) Deliver(dir string, msg *Message) error {
	box := maildir.Dir(dir)
	if err := box.Init(); err != nil {
		return &DeliveryError{Maildir: dir, Err: err}
	}

	b, err := msg.Encode()
	if err != nil {
		return &DeliveryError{Maildir: dir, Err: err}
	}

	if viper.GetBool("debug") {
		log.Printf("Writing %q to %s", msg.Subject, dir)
	}

	del, err := maildir.NewDelivery(dir)
	if err != nil {
		return &DeliveryError{Maildir: dir, Err: err}
	}

	if _, err := del.Write(b.Bytes()); err != nil {
		del.Abort()
		return &DeliveryError{Maildir: dir, Err: err}
	}

	if err := del.Close(); err != nil {
		return &DeliveryError{Maildir: dir, Err: err}
	}

	return nil
}
