package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name DataSource --dir ../usecase --output usecase --outpkg usecasemock --filename data_source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name PlayerFinder --dir ../usecase --output usecase --outpkg usecasemock --filename player_finder_mock.go
