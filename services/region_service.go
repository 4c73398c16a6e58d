package services

import (
	"github.com/franciscofornicola/rede-alerta/config"
	"github.com/franciscofornicola/rede-alerta/models"
)

func CreateRegion(name string) (*models.Region, error) {
	region := models.Region{Name: name}
	if err := config.DB.Create(&region).Error; err != nil {
		return nil, err
	}
	return &region, nil
}

func ListRegions() ([]models.Region, error) {
	regions := make([]models.Region, 0)
	if err := config.DB.Order("id").Find(&regions).Error; err != nil {
		return nil, err
	}
	return regions, nil
}

func GetRegion(id uint) (*models.Region, error) {
	var region models.Region
	if err := config.DB.First(&region, id).Error; err != nil {
		return nil, err
	}
	return &region, nil
}

func UpdateRegion(id uint, name string) (*models.Region, error) {
	var region models.Region
	if err := config.DB.First(&region, id).Error; err != nil {
		return nil, err
	}
	region.Name = name
	if err := config.DB.Save(&region).Error; err != nil {
		return nil, err
	}
	return &region, nil
}

func DeleteRegion(id uint) error {
	var region models.Region
	if err := config.DB.First(&region, id).Error; err != nil {
		return err
	}
	return config.DB.Delete(&region).Error
}
