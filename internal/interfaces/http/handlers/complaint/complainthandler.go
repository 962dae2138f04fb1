package complaint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"civicroute/internal/application/complaint/usecases"
	"civicroute/internal/shared/logger"
	"civicroute/internal/shared/utils"
)

type ComplaintHandler struct {
	receiveComplaintUC    usecases.ReceiveComplaintExecutor
	assignComplaintUC     usecases.AssignComplaintExecutor
	releaseComplaintUC    usecases.ReleaseComplaintExecutor
	saveDraftAnswerUC     usecases.SaveDraftAnswerExecutor
	completeAnswerUC      usecases.CompleteAnswerExecutor
	archiveComplaintUC    usecases.ArchiveComplaintExecutor
	cancelComplaintUC     usecases.CancelComplaintExecutor
	createFollowUpUC      usecases.CreateFollowUpExecutor
	requestRerouteUC      usecases.RequestRerouteExecutor
	approveRerouteUC      usecases.ApproveRerouteExecutor
	rejectRerouteUC       usecases.RejectRerouteExecutor
	recordNormalizationUC usecases.RecordNormalizationExecutor
	getComplaintUC        usecases.GetComplaintExecutor
	listComplaintsUC      usecases.ListComplaintsExecutor
	logger                logger.Interface
}

func NewComplaintHandler(
	receiveComplaintUC usecases.ReceiveComplaintExecutor,
	assignComplaintUC usecases.AssignComplaintExecutor,
	releaseComplaintUC usecases.ReleaseComplaintExecutor,
	saveDraftAnswerUC usecases.SaveDraftAnswerExecutor,
	completeAnswerUC usecases.CompleteAnswerExecutor,
	archiveComplaintUC usecases.ArchiveComplaintExecutor,
	cancelComplaintUC usecases.CancelComplaintExecutor,
	createFollowUpUC usecases.CreateFollowUpExecutor,
	requestRerouteUC usecases.RequestRerouteExecutor,
	approveRerouteUC usecases.ApproveRerouteExecutor,
	rejectRerouteUC usecases.RejectRerouteExecutor,
	recordNormalizationUC usecases.RecordNormalizationExecutor,
	getComplaintUC usecases.GetComplaintExecutor,
	listComplaintsUC usecases.ListComplaintsExecutor,
) *ComplaintHandler {
	return &ComplaintHandler{
		receiveComplaintUC:    receiveComplaintUC,
		assignComplaintUC:     assignComplaintUC,
		releaseComplaintUC:    releaseComplaintUC,
		saveDraftAnswerUC:     saveDraftAnswerUC,
		completeAnswerUC:      completeAnswerUC,
		archiveComplaintUC:    archiveComplaintUC,
		cancelComplaintUC:     cancelComplaintUC,
		createFollowUpUC:      createFollowUpUC,
		requestRerouteUC:      requestRerouteUC,
		approveRerouteUC:      approveRerouteUC,
		rejectRerouteUC:       rejectRerouteUC,
		recordNormalizationUC: recordNormalizationUC,
		getComplaintUC:        getComplaintUC,
		listComplaintsUC:      listComplaintsUC,
		logger:                logger.NewLogger(),
	}
}

// ReceiveComplaint handles POST /complaints
func (h *ComplaintHandler) ReceiveComplaint(c *gin.Context) {
	var req ReceiveComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for receive complaint", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.receiveComplaintUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Complaint received successfully")
}

// GetComplaint handles GET /complaints/:id
func (h *ComplaintHandler) GetComplaint(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetComplaintQuery{
		ComplaintID: complaintID,
	}

	result, err := h.getComplaintUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetComplaintByNumber handles GET /complaints/number/:number
func (h *ComplaintHandler) GetComplaintByNumber(c *gin.Context) {
	query := usecases.GetComplaintQuery{
		Number: c.Param("number"),
	}

	result, err := h.getComplaintUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListComplaints handles GET /complaints
func (h *ComplaintHandler) ListComplaints(c *gin.Context) {
	req, err := parseListComplaintsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listComplaintsUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Complaints, result.Total, req.Page, req.PageSize)
}

// AssignComplaint handles POST /complaints/:id/assign
func (h *ComplaintHandler) AssignComplaint(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AssignComplaintCommand{
		ComplaintID: complaintID,
		AssigneeID:  req.AssigneeID,
	}

	result, err := h.assignComplaintUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Complaint assigned successfully", result)
}

// ReleaseComplaint handles POST /complaints/:id/release
func (h *ComplaintHandler) ReleaseComplaint(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReleaseComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ReleaseComplaintCommand{
		ComplaintID: complaintID,
		CallerID:    req.CallerID,
	}

	result, err := h.releaseComplaintUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Complaint released successfully", result)
}

// SaveDraftAnswer handles PUT /complaints/:id/answer/draft
func (h *ComplaintHandler) SaveDraftAnswer(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SaveDraftAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.SaveDraftAnswerCommand{
		ComplaintID: complaintID,
		Draft:       req.Draft,
	}

	result, err := h.saveDraftAnswerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Draft saved successfully", result)
}

// CompleteAnswer handles POST /complaints/:id/answer/complete
func (h *ComplaintHandler) CompleteAnswer(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CompleteAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for complete answer", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CompleteAnswerCommand{
		ComplaintID: complaintID,
		Answer:      req.Answer,
		AnsweredBy:  req.AnsweredBy,
	}

	result, err := h.completeAnswerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Answer completed successfully", result)
}

// ArchiveComplaint handles POST /complaints/:id/archive
func (h *ComplaintHandler) ArchiveComplaint(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ArchiveComplaintCommand{
		ComplaintID: complaintID,
	}

	result, err := h.archiveComplaintUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Complaint archived successfully", result)
}

// CancelComplaint handles POST /complaints/:id/cancel
func (h *ComplaintHandler) CancelComplaint(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CancelComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CancelComplaintCommand{
		ComplaintID: complaintID,
		CanceledBy:  req.CanceledBy,
	}

	result, err := h.cancelComplaintUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Complaint canceled successfully", result)
}

// CreateFollowUp handles POST /complaints/:id/follow-ups
func (h *ComplaintHandler) CreateFollowUp(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create follow-up", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateFollowUpCommand{
		ParentID: complaintID,
		Title:    req.Title,
		Body:     req.Body,
	}

	result, err := h.createFollowUpUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Follow-up created successfully")
}

// RequestReroute handles POST /complaints/:id/reroutes
func (h *ComplaintHandler) RequestReroute(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RequestRerouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for request reroute", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RequestRerouteCommand{
		ComplaintID:  complaintID,
		TargetDeptID: req.TargetDeptID,
		Reason:       req.Reason,
		RequesterID:  req.RequesterID,
	}

	result, err := h.requestRerouteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Reroute requested successfully")
}

// ApproveReroute handles POST /reroutes/:id/approve
func (h *ComplaintHandler) ApproveReroute(c *gin.Context) {
	requestID, err := parseRerouteID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ResolveRerouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ApproveRerouteCommand{
		RequestID:  requestID,
		ReviewerID: req.ReviewerID,
	}

	result, err := h.approveRerouteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reroute approved successfully", result)
}

// RejectReroute handles POST /reroutes/:id/reject
func (h *ComplaintHandler) RejectReroute(c *gin.Context) {
	requestID, err := parseRerouteID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ResolveRerouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RejectRerouteCommand{
		RequestID:  requestID,
		ReviewerID: req.ReviewerID,
	}

	result, err := h.rejectRerouteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reroute rejected successfully", result)
}

// RecordNormalization handles POST /complaints/:id/normalization
func (h *ComplaintHandler) RecordNormalization(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RecordNormalizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for record normalization", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.recordNormalizationUC.Execute(c.Request.Context(), req.ToCommand(complaintID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Normalization recorded successfully", result)
}
