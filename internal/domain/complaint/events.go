package complaint

import (
	"strconv"
	"time"

	"civicroute/internal/domain/shared/events"
)

const (
	EventComplaintReceived = "complaint.received"
	EventComplaintAssigned = "complaint.assigned"
	EventComplaintReleased = "complaint.released"
	EventAnswerCompleted   = "complaint.answer_completed"
	EventComplaintArchived = "complaint.archived"
	EventComplaintCanceled = "complaint.canceled"
	EventRerouteRequested  = "complaint.reroute_requested"
	EventRerouteResolved   = "complaint.reroute_resolved"
	EventFollowUpCreated   = "complaint.follow_up_created"
)

func baseEvent(complaintID uint, eventType string) events.BaseEvent {
	return events.BaseEvent{
		AggregateID: strconv.FormatUint(uint64(complaintID), 10),
		EventType:   eventType,
		OccurredAt:  time.Now(),
	}
}

type ComplaintReceivedEvent struct {
	events.BaseEvent
	ComplaintID uint
	Number      string
	ApplicantID uint
	Title       string
}

func NewComplaintReceivedEvent(complaintID uint, number string, applicantID uint, title string) ComplaintReceivedEvent {
	return ComplaintReceivedEvent{
		BaseEvent:   baseEvent(complaintID, EventComplaintReceived),
		ComplaintID: complaintID,
		Number:      number,
		ApplicantID: applicantID,
		Title:       title,
	}
}

type ComplaintAssignedEvent struct {
	events.BaseEvent
	ComplaintID uint
	AssigneeID  uint
}

func NewComplaintAssignedEvent(complaintID, assigneeID uint) ComplaintAssignedEvent {
	return ComplaintAssignedEvent{
		BaseEvent:   baseEvent(complaintID, EventComplaintAssigned),
		ComplaintID: complaintID,
		AssigneeID:  assigneeID,
	}
}

type ComplaintReleasedEvent struct {
	events.BaseEvent
	ComplaintID uint
	ReleasedBy  uint
}

func NewComplaintReleasedEvent(complaintID, releasedBy uint) ComplaintReleasedEvent {
	return ComplaintReleasedEvent{
		BaseEvent:   baseEvent(complaintID, EventComplaintReleased),
		ComplaintID: complaintID,
		ReleasedBy:  releasedBy,
	}
}

// AnswerCompletedEvent fires for both parent complaints and follow-ups.
// FollowUpID is zero when the parent itself was answered.
type AnswerCompletedEvent struct {
	events.BaseEvent
	ComplaintID uint
	FollowUpID  uint
	AnsweredBy  uint
}

func NewAnswerCompletedEvent(complaintID, followUpID, answeredBy uint) AnswerCompletedEvent {
	return AnswerCompletedEvent{
		BaseEvent:   baseEvent(complaintID, EventAnswerCompleted),
		ComplaintID: complaintID,
		FollowUpID:  followUpID,
		AnsweredBy:  answeredBy,
	}
}

type ComplaintArchivedEvent struct {
	events.BaseEvent
	ComplaintID uint
}

func NewComplaintArchivedEvent(complaintID uint) ComplaintArchivedEvent {
	return ComplaintArchivedEvent{
		BaseEvent:   baseEvent(complaintID, EventComplaintArchived),
		ComplaintID: complaintID,
	}
}

type ComplaintCanceledEvent struct {
	events.BaseEvent
	ComplaintID uint
}

func NewComplaintCanceledEvent(complaintID uint) ComplaintCanceledEvent {
	return ComplaintCanceledEvent{
		BaseEvent:   baseEvent(complaintID, EventComplaintCanceled),
		ComplaintID: complaintID,
	}
}

type RerouteRequestedEvent struct {
	events.BaseEvent
	ComplaintID  uint
	RequestID    uint
	OriginDeptID uint
	TargetDeptID uint
	RequesterID  uint
}

func NewRerouteRequestedEvent(complaintID, requestID, originDeptID, targetDeptID, requesterID uint) RerouteRequestedEvent {
	return RerouteRequestedEvent{
		BaseEvent:    baseEvent(complaintID, EventRerouteRequested),
		ComplaintID:  complaintID,
		RequestID:    requestID,
		OriginDeptID: originDeptID,
		TargetDeptID: targetDeptID,
		RequesterID:  requesterID,
	}
}

type RerouteResolvedEvent struct {
	events.BaseEvent
	ComplaintID uint
	RequestID   uint
	Approved    bool
	ReviewerID  uint
}

func NewRerouteResolvedEvent(complaintID, requestID uint, approved bool, reviewerID uint) RerouteResolvedEvent {
	return RerouteResolvedEvent{
		BaseEvent:   baseEvent(complaintID, EventRerouteResolved),
		ComplaintID: complaintID,
		RequestID:   requestID,
		Approved:    approved,
		ReviewerID:  reviewerID,
	}
}

type FollowUpCreatedEvent struct {
	events.BaseEvent
	ComplaintID uint
	FollowUpID  uint
}

func NewFollowUpCreatedEvent(complaintID, followUpID uint) FollowUpCreatedEvent {
	return FollowUpCreatedEvent{
		BaseEvent:   baseEvent(complaintID, EventFollowUpCreated),
		ComplaintID: complaintID,
		FollowUpID:  followUpID,
	}
}
