package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Source --dir ../domain/schema --output domain/schema --outpkg schemamock --filename source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name SnapshotRepository --dir ../domain/player --output domain/player --outpkg playermock --filename snapshot_repository_mock.go
