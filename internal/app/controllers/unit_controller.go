package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/helpers"
)

// UnitController handles unit operations nested under a course
type UnitController struct {
	unitService services.UnitService
}

// NewUnitController creates a new UnitController
func NewUnitController(unitService services.UnitService) *UnitController {
	return &UnitController{
		unitService: unitService,
	}
}

// unitPath parses the course id and, when withUnit is set, the unit id
func unitPath(ctx *gin.Context, withUnit bool) (courseID, unitID uuid.UUID, err error) {
	courseID, err = parseUUIDParam(ctx, "id")
	if err != nil || !withUnit {
		return courseID, uuid.Nil, err
	}
	unitID, err = parseUUIDParam(ctx, "unitId")
	return courseID, unitID, err
}

// AddUnit appends a unit to a course
// @Summary Add a unit to a course
// @Description The new unit is placed after the course's existing units
// @Tags units
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID" Format(uuid)
// @Param request body dto.CreateUnitRequest true "Unit information"
// @Success 201 {object} dto.APIResponse{result=dto.Result{data=models.Unit}} "Unit added successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses/{id}/units [post]
func (c *UnitController) AddUnit(ctx *gin.Context) {
	courseID, _, err := unitPath(ctx, false)
	if err != nil {
		middleware.HandleAPIError(ctx, dto.OpUnitCreate, err)
		return
	}

	var req dto.CreateUnitRequest
	if err := bindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, dto.OpUnitCreate, err)
		return
	}

	unit, err := c.unitService.AddUnit(ctx.Request.Context(), courseID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, dto.OpUnitCreate, err)
		return
	}

	respond(ctx, http.StatusCreated, dto.OpUnitCreate, "Unit added successfully", unit)
}

// GetUnits lists a course's units
// @Summary List units of a course
// @Description Units are returned in position order
// @Tags units
// @Produce json
// @Param id path string true "Course ID" Format(uuid)
// @Param page query int false "Zero-based page" minimum(0) default(0)
// @Param size query int false "Page size" minimum(1) maximum(100) default(10)
// @Success 200 {object} dto.APIResponse{result=dto.Result{data=query.Page[models.Unit]}} "Units retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid parameters"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses/{id}/units [get]
func (c *UnitController) GetUnits(ctx *gin.Context) {
	courseID, _, err := unitPath(ctx, false)
	if err != nil {
		middleware.HandleAPIError(ctx, dto.OpUnitGetAll, err)
		return
	}

	page, size, err := helpers.ParsePaginationParams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, dto.OpUnitGetAll, err)
		return
	}

	result, err := c.unitService.ListUnits(ctx.Request.Context(), courseID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, dto.OpUnitGetAll, err)
		return
	}

	respond(ctx, http.StatusOK, dto.OpUnitGetAll, "Units retrieved successfully", result)
}

// GetUnitByID retrieves one unit of a course
// @Summary Get unit details
// @Tags units
// @Produce json
// @Param id path string true "Course ID" Format(uuid)
// @Param unitId path string true "Unit ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{result=dto.Result{data=models.Unit}} "Unit retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid ID or unit belongs to another course"
// @Failure 404 {object} dto.APIResponse "Course or unit not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses/{id}/units/{unitId} [get]
func (c *UnitController) GetUnitByID(ctx *gin.Context) {
	courseID, unitID, err := unitPath(ctx, true)
	if err != nil {
		middleware.HandleAPIError(ctx, dto.OpUnitGetByID, err)
		return
	}

	unit, err := c.unitService.GetUnit(ctx.Request.Context(), courseID, unitID)
	if err != nil {
		middleware.HandleAPIError(ctx, dto.OpUnitGetByID, err)
		return
	}

	respond(ctx, http.StatusOK, dto.OpUnitGetByID, "Unit retrieved successfully", unit)
}

// UpdateUnit updates a unit of a course
// @Summary Update a unit
// @Description Overwrites the supplied non-blank fields
// @Tags units
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID" Format(uuid)
// @Param unitId path string true "Unit ID" Format(uuid)
// @Param request body dto.UpdateUnitRequest true "Updated unit information"
// @Success 200 {object} dto.APIResponse{result=dto.Result{data=models.Unit}} "Unit updated successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.APIResponse "Course or unit not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses/{id}/units/{unitId} [put]
func (c *UnitController) UpdateUnit(ctx *gin.Context) {
	courseID, unitID, err := unitPath(ctx, true)
	if err != nil {
		middleware.HandleAPIError(ctx, dto.OpUnitUpdate, err)
		return
	}

	var req dto.UpdateUnitRequest
	if err := bindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, dto.OpUnitUpdate, err)
		return
	}

	unit, err := c.unitService.UpdateUnit(ctx.Request.Context(), courseID, unitID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, dto.OpUnitUpdate, err)
		return
	}

	respond(ctx, http.StatusOK, dto.OpUnitUpdate, "Unit updated successfully", unit)
}

// PatchUnit applies a partial update to a unit
// @Summary Patch a unit
// @Description Applies the recognised fields (title, content); unknown fields are ignored
// @Tags units
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID" Format(uuid)
// @Param unitId path string true "Unit ID" Format(uuid)
// @Param request body object true "Fields to change"
// @Success 200 {object} dto.APIResponse{result=dto.Result{data=models.Unit}} "Unit patched successfully"
// @Failure 400 {object} dto.APIResponse "Invalid field value"
// @Failure 401 {object} dto.APIResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.APIResponse "Course or unit not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses/{id}/units/{unitId} [patch]
func (c *UnitController) PatchUnit(ctx *gin.Context) {
	courseID, unitID, err := unitPath(ctx, true)
	if err != nil {
		middleware.HandleAPIError(ctx, dto.OpUnitPatch, err)
		return
	}

	var fields map[string]interface{}
	if err := bindJSON(ctx, &fields); err != nil {
		middleware.HandleAPIError(ctx, dto.OpUnitPatch, err)
		return
	}

	unit, err := c.unitService.PatchUnit(ctx.Request.Context(), courseID, unitID, fields)
	if err != nil {
		middleware.HandleAPIError(ctx, dto.OpUnitPatch, err)
		return
	}

	respond(ctx, http.StatusOK, dto.OpUnitPatch, "Unit patched successfully", unit)
}

// DeleteUnit removes a unit from a course
// @Summary Delete a unit
// @Tags units
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID" Format(uuid)
// @Param unitId path string true "Unit ID" Format(uuid)
// @Success 200 {object} dto.APIResponse "Unit deleted successfully"
// @Failure 400 {object} dto.APIResponse "Invalid ID or unit belongs to another course"
// @Failure 401 {object} dto.APIResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.APIResponse "Course or unit not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses/{id}/units/{unitId} [delete]
func (c *UnitController) DeleteUnit(ctx *gin.Context) {
	courseID, unitID, err := unitPath(ctx, true)
	if err != nil {
		middleware.HandleAPIError(ctx, dto.OpUnitDelete, err)
		return
	}

	if err := c.unitService.DeleteUnit(ctx.Request.Context(), courseID, unitID); err != nil {
		middleware.HandleAPIError(ctx, dto.OpUnitDelete, err)
		return
	}

	respond(ctx, http.StatusOK, dto.OpUnitDelete, "Unit deleted successfully", nil)
}
