package controller

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"estatehub_backend/internal/model"
	"estatehub_backend/pkg/database"
	"estatehub_backend/pkg/utils/jwt"
)

type CareerJobInput struct {
	Title        string     `json:"title" validate:"required"`
	Description  string     `json:"description"`
	DepartmentID *uint      `json:"department_id"`
	JobTypeID    *uint      `json:"job_type_id"`
	LocationID   *uint      `json:"location_id"`
	ClosesAt     *time.Time `json:"closes_at"`
}

func CreateCareerJob(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	input := new(CareerJobInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	slug, err := allocateSlug(database.GetDB(), &model.CareerJob{}, claims.TenantID, input.Title, 0)
	if err != nil {
		return respondErr(c, err)
	}

	job := model.CareerJob{
		TenantID:     claims.TenantID,
		Title:        input.Title,
		Slug:         slug,
		Description:  input.Description,
		DepartmentID: input.DepartmentID,
		JobTypeID:    input.JobTypeID,
		LocationID:   input.LocationID,
		ClosesAt:     input.ClosesAt,
		IsActive:     true,
	}
	if err := database.GetDB().Create(&job).Error; err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

func ListCareerJobs(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	q := database.GetDB().Where("tenant_id = ?", claims.TenantID)
	if departmentStr := c.Query("department_id"); departmentStr != "" {
		departmentID, err := strconv.ParseUint(departmentStr, 10, 32)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid department_id",
			})
		}
		q = q.Where("department_id = ?", uint(departmentID))
	}

	var jobs []model.CareerJob
	if err := q.Preload("Department").
		Preload("JobType").
		Preload("Location").
		Order("created_at desc").
		Find(&jobs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch jobs",
		})
	}
	return c.JSON(jobs)
}

func DeleteCareerJob(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	}

	var job model.CareerJob
	if err := database.GetDB().First(&job, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}
	if job.TenantID != claims.TenantID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not authorized to delete this job",
		})
	}

	if err := database.GetDB().Unscoped().Delete(&job).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete job",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
