package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/query"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/helpers"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetAllCourses lists courses with filtering, search, sorting and pagination
// @Summary List courses
// @Description Filters by board, medium, grade and subject (case-insensitive substring), searches name and description, sorts and pages the result
// @Tags courses
// @Produce json
// @Param board query string false "Board filter" example(CBSE)
// @Param medium query string false "Medium filter" example(ENGLISH)
// @Param grade query string false "Grade filter" example(CLASS_1)
// @Param subject query string false "Subject filter" example(SCIENCE)
// @Param search query string false "Search in name and description"
// @Param orderBy query string false "Sort field" Enums(name, board, grade, subject, medium) default(name)
// @Param direction query string false "Sort direction" Enums(asc, desc) default(asc)
// @Param page query int false "Zero-based page" minimum(0) default(0)
// @Param size query int false "Page size" minimum(1) maximum(100) default(10)
// @Success 200 {object} dto.APIResponse{result=dto.Result{data=query.Page[models.Course]}} "Courses retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid paging parameters"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	page, size, err := helpers.ParsePaginationParams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, dto.OpCourseGetAll, err)
		return
	}

	params := query.Params{
		Board:     ctx.Query("board"),
		Medium:    ctx.Query("medium"),
		Grade:     ctx.Query("grade"),
		Subject:   ctx.Query("subject"),
		Search:    ctx.Query("search"),
		OrderBy:   ctx.Query("orderBy"),
		Direction: ctx.Query("direction"),
		Page:      page,
		Size:      size,
	}

	result, err := c.courseService.ListCourses(ctx.Request.Context(), params)
	if err != nil {
		middleware.HandleAPIError(ctx, dto.OpCourseGetAll, err)
		return
	}

	respond(ctx, http.StatusOK, dto.OpCourseGetAll, "Courses retrieved successfully", result)
}

// GetCourseByID retrieves a course with its units
// @Summary Get course details
// @Tags courses
// @Produce json
// @Param id path string true "Course ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{result=dto.Result{data=models.Course}} "Course retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid course ID"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, dto.OpCourseGetByID, err)
		return
	}

	course, err := c.courseService.GetCourse(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, dto.OpCourseGetByID, err)
		return
	}

	respond(ctx, http.StatusOK, dto.OpCourseGetByID, "Course retrieved successfully", course)
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Creates a course with optional units. All scalar fields are required and medium must list at least one value
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{result=dto.Result{data=models.Course}} "Course created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := bindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, dto.OpCourseCreate, err)
		return
	}

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, dto.OpCourseCreate, err)
		return
	}

	respond(ctx, http.StatusCreated, dto.OpCourseCreate, "Course created successfully", course)
}

// UpdateCourse updates an existing course
// @Summary Update a course
// @Description Overwrites the supplied non-blank fields. A non-empty units list replaces the course's units; units not listed are detached
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID" Format(uuid)
// @Param request body dto.UpdateCourseRequest true "Updated course information"
// @Success 200 {object} dto.APIResponse{result=dto.Result{data=models.Course}} "Course updated successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, dto.OpCourseUpdate, err)
		return
	}

	var req dto.UpdateCourseRequest
	if err := bindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, dto.OpCourseUpdate, err)
		return
	}

	course, err := c.courseService.UpdateCourse(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, dto.OpCourseUpdate, err)
		return
	}

	respond(ctx, http.StatusOK, dto.OpCourseUpdate, "Course updated successfully", course)
}

// PatchCourse applies a partial update
// @Summary Patch a course
// @Description Applies the recognised fields (name, description, board, grade, subject, medium); unknown fields are ignored
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID" Format(uuid)
// @Param request body object true "Fields to change"
// @Success 200 {object} dto.APIResponse{result=dto.Result{data=models.Course}} "Course patched successfully"
// @Failure 400 {object} dto.APIResponse "Invalid field value"
// @Failure 401 {object} dto.APIResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses/{id} [patch]
func (c *CourseController) PatchCourse(ctx *gin.Context) {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, dto.OpCoursePatch, err)
		return
	}

	var fields map[string]interface{}
	if err := bindJSON(ctx, &fields); err != nil {
		middleware.HandleAPIError(ctx, dto.OpCoursePatch, err)
		return
	}

	course, err := c.courseService.PatchCourse(ctx.Request.Context(), id, fields)
	if err != nil {
		middleware.HandleAPIError(ctx, dto.OpCoursePatch, err)
		return
	}

	respond(ctx, http.StatusOK, dto.OpCoursePatch, "Course patched successfully", course)
}

// DeleteCourse deletes a course and detaches its units
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID" Format(uuid)
// @Success 200 {object} dto.APIResponse "Course deleted successfully"
// @Failure 400 {object} dto.APIResponse "Invalid course ID"
// @Failure 401 {object} dto.APIResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, dto.OpCourseDelete, err)
		return
	}

	if err := c.courseService.DeleteCourse(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, dto.OpCourseDelete, err)
		return
	}

	respond(ctx, http.StatusOK, dto.OpCourseDelete, "Course deleted successfully", nil)
}
