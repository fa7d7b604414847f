package service

import (
	"github.com/pinpin/travel-backend/internal/repository"
	"github.com/pinpin/travel-backend/internal/token"
)

type Services struct {
	Account  *AccountService
	Profile  *ProfileService
	Avatar   *AvatarService
	Category *CategoryService
	Place    *PlaceService
	Weather  *WeatherService
}

// Dependencies are the non-repository collaborators wired in at the
// composition root.
type Dependencies struct {
	Issuer       *token.Issuer
	Images       ImageStore
	Places       PlaceSearcher
	Weather      WeatherProvider
	WeatherCache WeatherCache
}

func NewServices(repos *repository.Repositories, deps Dependencies) *Services {
	return &Services{
		Account:  NewAccountService(repos.Account, repos.Avatar, deps.Issuer),
		Profile:  NewProfileService(repos.Transactor, repos.Profile, repos.Avatar, repos.AvatarHistory),
		Avatar:   NewAvatarService(repos.Avatar, deps.Images),
		Category: NewCategoryService(repos.Taxonomy),
		Place:    NewPlaceService(deps.Places),
		Weather:  NewWeatherService(deps.Weather, deps.WeatherCache),
	}
}
