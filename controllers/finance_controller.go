package controllers

import (
	"net/http"
	"time"

	"dbhotel-backend/models"
	"dbhotel-backend/services"
	"dbhotel-backend/utils"

	"github.com/gin-gonic/gin"
)

type FinanceController struct {
	FinanceSvc *services.FinanceService
}

func NewFinanceController(svc *services.FinanceService) *FinanceController {
	return &FinanceController{FinanceSvc: svc}
}

type createExpenseRequest struct {
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Date        string  `json:"date"`
	PaidBy      string  `json:"paid_by"`
}

// GET /api/finance/summary
func (ctrl *FinanceController) GetSummary(c *gin.Context) {
	summary, err := ctrl.FinanceSvc.Summary()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary)
}

// GET /api/expenses
func (ctrl *FinanceController) GetExpenses(c *gin.Context) {
	expenses, err := ctrl.FinanceSvc.GetExpenses()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// POST /api/expenses
func (ctrl *FinanceController) CreateExpense(c *gin.Context) {
	var req createExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid expense payload: " + err.Error()})
		return
	}

	expense := models.Expense{
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		PaidBy:      req.PaidBy,
	}
	if req.Date != "" {
		t, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid date format: " + req.Date})
			return
		}
		expense.Date = t
	}

	if err := ctrl.FinanceSvc.CreateExpense(&expense); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, expense)
}
