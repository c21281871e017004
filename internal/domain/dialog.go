package domain

import "fmt"

// Dialog is the confirmation prompt shown before an RSVP is submitted.
type Dialog struct {
	Header          string   `json:"header"`
	Body            string   `json:"body"`
	ConfirmLabel    string   `json:"confirm_label"`
	DismissLabel    string   `json:"dismiss_label"`
	SubmittingLabel string   `json:"submitting_label"`
	Response        Response `json:"response"`
}

// DialogFor picks the prompt for the viewer's current state. Attending viewers
// get the cancel prompt; everyone else is asked to attend.
func DialogFor(state RSVPState, eventName string) Dialog {
	if state == RespondedYes {
		return Dialog{
			Header:          "Cancel RSVP",
			Body:            fmt.Sprintf("Are you sure you want to cancel your RSVP for %s?", eventName),
			ConfirmLabel:    "Yes, cancel the RSVP",
			DismissLabel:    "No, nevermind",
			SubmittingLabel: "Cancelling...",
			Response:        ResponseNo,
		}
	}

	return Dialog{
		Header:          "RSVP",
		Body:            fmt.Sprintf("Are you sure you want to RSVP for %s?", eventName),
		ConfirmLabel:    "Yes, I want to go",
		DismissLabel:    "No, nevermind",
		SubmittingLabel: "RSVPing...",
		Response:        ResponseYes,
	}
}

type NotificationStatus string

const (
	NotificationSuccess NotificationStatus = "success"
	NotificationError   NotificationStatus = "error"
)

type Notification struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Status      NotificationStatus `json:"status"`
	IsClosable  bool               `json:"is_closable"`
}

func CreatedNotification() Notification {
	return Notification{
		Title:       "RSVP created.",
		Description: "Your RSVP has been created.",
		Status:      NotificationSuccess,
		IsClosable:  true,
	}
}

func UpdatedNotification() Notification {
	return Notification{
		Title:       "RSVP updated.",
		Description: "Your RSVP has been updated.",
		Status:      NotificationSuccess,
		IsClosable:  true,
	}
}

// ErrorNotification carries message to the viewer unchanged.
func ErrorNotification(message string) Notification {
	return Notification{
		Title:       "An error occurred.",
		Description: message,
		Status:      NotificationError,
		IsClosable:  true,
	}
}
