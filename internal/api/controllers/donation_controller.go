package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skenk/internal/models/request_models"
	"skenk/internal/services"
	"skenk/pkg/utils"
)

type DonationController struct {
	donationService services.DonationServiceInterface
}

func NewDonationController(donationService services.DonationServiceInterface) *DonationController {
	return &DonationController{
		donationService: donationService,
	}
}

// InitializeDonation godoc
// @Summary Initialize a donation for a plan
// @Description Resolves the plan, validates the donor and starts a hosted checkout
// @Tags Donations
// @Accept json
// @Produce json
// @Param request body request_models.InitializeDonationRequest true "Initialize Donation Request"
// @Success 200 {object} response_models.InitializeDonationResponse
// @Router /subscription/initialize [post]
func (d *DonationController) InitializeDonation(c *gin.Context) {
	var req request_models.InitializeDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	// The donor-details block is optional as a whole; when any of it is
	// supplied the full donor contract applies.
	if req.FirstName != "" || req.LastName != "" || req.Phone != "" {
		info, fieldErrors := utils.ValidateDonor(utils.DonorInput{
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Phone:     req.Phone,
		})
		if fieldErrors != nil {
			utils.RespondValidationError(c, fieldErrors)
			return
		}
		req.Email = info.Email
		req.FirstName = info.FirstName
		req.LastName = info.LastName
		req.Phone = info.Phone
	} else if msg := utils.ValidateEmail(req.Email); msg != "" {
		utils.RespondValidationError(c, utils.FieldErrors{"email": msg})
		return
	}

	resp, err := d.donationService.InitializeDonation(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// VerifyDonation godoc
// @Summary Verify a donation by its provider reference
// @Tags Donations
// @Produce json
// @Param reference query string false "Transaction reference"
// @Param trxref query string false "Legacy transaction reference"
// @Router /subscription/verify [get]
func (d *DonationController) VerifyDonation(c *gin.Context) {
	// reference wins over the legacy trxref parameter when both arrive.
	reference := c.Query("reference")
	if reference == "" {
		reference = c.Query("trxref")
	}

	if reference == "" {
		utils.RespondError(c, http.StatusBadRequest, "Transaction reference is required")
		return
	}

	d.verify(c, reference)
}

func (d *DonationController) VerifyDonationPost(c *gin.Context) {
	var req request_models.VerifyDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Reference == "" {
		utils.RespondError(c, http.StatusBadRequest, "Transaction reference is required")
		return
	}

	d.verify(c, req.Reference)
}

func (d *DonationController) verify(c *gin.Context, reference string) {
	txn, err := d.donationService.VerifyDonation(c.Request.Context(), reference)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"transaction": txn,
	})
}

func (d *DonationController) GenerateManagementLink(c *gin.Context) {
	var req request_models.ManageSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SubscriptionCode == "" {
		utils.RespondError(c, http.StatusBadRequest, "Subscription code is required")
		return
	}

	link, err := d.donationService.GenerateManagementLink(c.Request.Context(), req.SubscriptionCode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"link": link})
}

func (d *DonationController) FetchSubscription(c *gin.Context) {
	code := c.Query("subscription_code")
	if code == "" {
		utils.RespondError(c, http.StatusBadRequest, "Subscription code is required")
		return
	}

	subscription, err := d.donationService.FetchSubscription(c.Request.Context(), code)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, subscription)
}

func (d *DonationController) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": d.donationService.ListPlans()})
}
