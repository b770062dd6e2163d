// Package typefactory resolves and caches type descriptors by class name.
//
// A Factory sits in front of a metadata.Driver. Class names are passed
// through the entity.Mapper first, so aliases of a class share one cache
// entry. Classes without metadata are cached as well and reported with
// errors.ErrTypeNotFound. Collections built by the driver receive the
// factory itself, so related types resolve through the same cache:
//
//	factory, err := typefactory.New(driver, mapper,
//		typefactory.WithCache(cache.DefaultConfig()))
//	article, err := factory.GetType(`Blog\Article`)
//	tags, _ := article.Field("tags")
//	tagType, err := tags.(*entity.Collection).RelatedType(`Blog\Tag`)
package typefactory
