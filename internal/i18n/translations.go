package i18n

import "github.com/teruzahostel/minimarket-backend/pkg/enums"

// translations holds the storefront strings keyed by dotted lookup path.
// Category labels are keyed by the Portuguese category name, which is
// also the catalog join key.
var translations = map[enums.Language]map[string]string{
	enums.LanguagePT: {
		"appName":                    "Teruza Hostel Mini Mercado",
		"home":                       "Início",
		"search":                     "Buscar",
		"cart":                       "Carrinho",
		"information":                "Informações",
		"headline":                   "Peça do seu celular e receba no seu quarto",
		"start":                      "Começar",
		"bestSellers":                "Mais Vendidos",
		"categories":                 "Categorias",
		"category.Bebidas":           "Bebidas",
		"category.Snacks":            "Snacks",
		"category.Refeições Rápidas": "Refeições<br>Rápidas",
		"category.Higiene":           "Higiene",
		"category.Emergências":       "Emergências",
		"category.Serviços":          "Serviços",
		"addToCart":                  "Adicionar",
		"removeFromCart":             "Remover",
		"emptyCart":                  "Seu carrinho está vazio",
		"continueShopping":           "Continue comprando",
		"subtotal":                   "Subtotal",
		"deliveryFee":                "Taxa de entrega",
		"total":                      "Total",
		"checkout":                   "Finalizar Pedido",
		"guestName":                  "Nome",
		"roomNumber":                 "Número do Quarto",
		"phone":                      "Telefone",
		"countryCode":                "Código do País",
		"deliveryPreference":         "Preferência de Entrega",
		"atTheDoor":                  "Na porta",
		"handToMe":                   "Em mãos",
		"notes":                      "Observações (opcional)",
		"sendWhatsApp":               "Enviar pedido via WhatsApp",
		"copyOrder":                  "Copiar pedido",
		"paymentNote":                "O pagamento será combinado na entrega ou no checkout.",
		"orderReady":                 "Seu pedido está pronto para ser enviado",
		"confirmWhatsApp":            "Confirme no WhatsApp",
		"openingHours":               "Horário de Funcionamento",
		"hours":                      "11:00 - 22:00",
		"deliveryTime":               "Tempo Estimado de Entrega",
		"deliveryTimeValue":          "30-60 minutos",
		"deliveryRules":              "Regras de Entrega",
		"deliveryRulesText":          "Entregas disponíveis apenas dentro do hostel. Por favor, forneça o número correto do quarto.",
		"paymentInfo":                "Informações de Pagamento",
		"paymentInfoText":            "O pagamento pode ser feito em dinheiro ou cartão no momento da entrega. Também aceitamos pagamento na recepção.",
		"searchPlaceholder":          "Buscar produtos e serviços...",
		"allCategories":              "Todas as Categorias",
		"noProducts":                 "Nenhum produto encontrado",
		"quantity":                   "Quantidade",
		"orderCopied":                "Pedido copiado para área de transferência",
		"required":                   "obrigatório",
		"fillAllFields":              "Por favor, preencha todos os campos obrigatórios",
		"ddi.+55":                    "Brasil",
		"ddi.+54":                    "Argentina",
		"ddi.+57":                    "Colômbia",
		"ddi.+56":                    "Chile",
		"ddi.+51":                    "Peru",
		"ddi.+58":                    "Venezuela",
		"ddi.+593":                   "Equador",
		"ddi.+591":                   "Bolívia",
		"ddi.+595":                   "Paraguai",
		"ddi.+598":                   "Uruguai",
		"ddi.OTHER":                  "Outro",
		"admin.login":                "Login Admin",
		"admin.email":                "Email",
		"admin.password":             "Senha",
		"admin.loginButton":          "Entrar",
		"admin.dashboard":            "Painel Admin",
		"admin.products":             "Produtos",
		"admin.addProduct":           "Adicionar Produto",
		"admin.editProduct":          "Editar Produto",
		"admin.active":               "Ativo",
		"admin.featured":             "Destaque",
		"admin.type":                 "Tipo",
		"admin.product":              "Produto",
		"admin.service":              "Serviço",
		"admin.category":             "Categoria",
		"admin.price":                "Preço",
		"admin.image":                "Imagem",
		"admin.uploadImage":          "Upload Imagem",
		"admin.save":                 "Salvar",
		"admin.cancel":               "Cancelar",
		"admin.delete":               "Excluir",
		"admin.logout":               "Sair",
		"admin.namePt":               "Nome (PT)",
		"admin.nameEn":               "Nome (EN)",
		"admin.nameEs":               "Nome (ES)",
		"admin.descPt":               "Descrição (PT)",
		"admin.descEn":               "Descrição (EN)",
		"admin.descEs":               "Descrição (ES)",
		"admin.confirmDelete":        "Tem certeza que deseja excluir este item?",
		"admin.productSaved":         "Produto salvo com sucesso",
		"admin.productDeleted":       "Produto excluído com sucesso",
		"admin.error":                "Erro ao processar requisição",
	},
	enums.LanguageEN: {
		"appName":                    "Teruza Hostel Mini Mercado",
		"home":                       "Home",
		"search":                     "Search",
		"cart":                       "Cart",
		"information":                "Information",
		"headline":                   "Order from your phone and get it delivered to your room",
		"start":                      "Start",
		"bestSellers":                "Best Sellers",
		"categories":                 "Categories",
		"category.Bebidas":           "Drinks",
		"category.Snacks":            "Snacks",
		"category.Refeições Rápidas": "Quick<br>Meals",
		"category.Higiene":           "Hygiene",
		"category.Emergências":       "Essentials",
		"category.Serviços":          "Services",
		"addToCart":                  "Add to Cart",
		"removeFromCart":             "Remove",
		"emptyCart":                  "Your cart is empty",
		"continueShopping":           "Continue shopping",
		"subtotal":                   "Subtotal",
		"deliveryFee":                "Delivery Fee",
		"total":                      "Total",
		"checkout":                   "Checkout",
		"guestName":                  "Name",
		"roomNumber":                 "Room Number",
		"phone":                      "Phone",
		"countryCode":                "Country Code",
		"deliveryPreference":         "Delivery Preference",
		"atTheDoor":                  "At the door",
		"handToMe":                   "Hand to me",
		"notes":                      "Notes (optional)",
		"sendWhatsApp":               "Send order via WhatsApp",
		"copyOrder":                  "Copy order",
		"paymentNote":                "Payment will be arranged on delivery or at checkout.",
		"orderReady":                 "Your order is ready to be sent",
		"confirmWhatsApp":            "Confirm on WhatsApp",
		"openingHours":               "Opening Hours",
		"hours":                      "11:00 AM - 10:00 PM",
		"deliveryTime":               "Estimated Delivery Time",
		"deliveryTimeValue":          "30-60 minutes",
		"deliveryRules":              "Delivery Rules",
		"deliveryRulesText":          "Deliveries available only within the hostel. Please provide correct room number.",
		"paymentInfo":                "Payment Information",
		"paymentInfoText":            "Payment can be made in cash or card upon delivery. We also accept payment at reception.",
		"searchPlaceholder":          "Search products and services...",
		"allCategories":              "All Categories",
		"noProducts":                 "No products found",
		"quantity":                   "Quantity",
		"orderCopied":                "Order copied to clipboard",
		"required":                   "required",
		"fillAllFields":              "Please fill all required fields",
		"ddi.+55":                    "Brazil",
		"ddi.+54":                    "Argentina",
		"ddi.+57":                    "Colombia",
		"ddi.+56":                    "Chile",
		"ddi.+51":                    "Peru",
		"ddi.+58":                    "Venezuela",
		"ddi.+593":                   "Ecuador",
		"ddi.+591":                   "Bolivia",
		"ddi.+595":                   "Paraguay",
		"ddi.+598":                   "Uruguay",
		"ddi.OTHER":                  "Other",
		"admin.login":                "Admin Login",
		"admin.email":                "Email",
		"admin.password":             "Password",
		"admin.loginButton":          "Login",
		"admin.dashboard":            "Admin Dashboard",
		"admin.products":             "Products",
		"admin.addProduct":           "Add Product",
		"admin.editProduct":          "Edit Product",
		"admin.active":               "Active",
		"admin.featured":             "Featured",
		"admin.type":                 "Type",
		"admin.product":              "Product",
		"admin.service":              "Service",
		"admin.category":             "Category",
		"admin.price":                "Price",
		"admin.image":                "Image",
		"admin.uploadImage":          "Upload Image",
		"admin.save":                 "Save",
		"admin.cancel":               "Cancel",
		"admin.delete":               "Delete",
		"admin.logout":               "Logout",
		"admin.namePt":               "Name (PT)",
		"admin.nameEn":               "Name (EN)",
		"admin.nameEs":               "Name (ES)",
		"admin.descPt":               "Description (PT)",
		"admin.descEn":               "Description (EN)",
		"admin.descEs":               "Description (ES)",
		"admin.confirmDelete":        "Are you sure you want to delete this item?",
		"admin.productSaved":         "Product saved successfully",
		"admin.productDeleted":       "Product deleted successfully",
		"admin.error":                "Error processing request",
	},
	enums.LanguageES: {
		"appName":                    "Teruza Hostel Mini Mercado",
		"home":                       "Inicio",
		"search":                     "Buscar",
		"cart":                       "Carrito",
		"information":                "Información",
		"headline":                   "Pide desde tu teléfono y recíbelo en tu habitación",
		"start":                      "Comenzar",
		"bestSellers":                "Más Vendidos",
		"categories":                 "Categorías",
		"category.Bebidas":           "Bebidas",
		"category.Snacks":            "Snacks",
		"category.Refeições Rápidas": "Comidas<br>Rápidas",
		"category.Higiene":           "Higiene",
		"category.Emergências":       "Esenciales",
		"category.Serviços":          "Servicios",
		"addToCart":                  "Agregar",
		"removeFromCart":             "Eliminar",
		"emptyCart":                  "Tu carrito está vacío",
		"continueShopping":           "Continuar comprando",
		"subtotal":                   "Subtotal",
		"deliveryFee":                "Tarifa de entrega",
		"total":                      "Total",
		"checkout":                   "Finalizar Pedido",
		"guestName":                  "Nombre",
		"roomNumber":                 "Número de Habitación",
		"phone":                      "Teléfono",
		"countryCode":                "Código de País",
		"deliveryPreference":         "Preferencia de Entrega",
		"atTheDoor":                  "En la puerta",
		"handToMe":                   "En mano",
		"notes":                      "Notas (opcional)",
		"sendWhatsApp":               "Enviar pedido por WhatsApp",
		"copyOrder":                  "Copiar pedido",
		"paymentNote":                "El pago se coordinará en la entrega o en el checkout.",
		"orderReady":                 "Tu pedido está listo para ser enviado",
		"confirmWhatsApp":            "Confirmar en WhatsApp",
		"openingHours":               "Horario de Apertura",
		"hours":                      "11:00 - 22:00",
		"deliveryTime":               "Tiempo Estimado de Entrega",
		"deliveryTimeValue":          "30-60 minutos",
		"deliveryRules":              "Reglas de Entrega",
		"deliveryRulesText":          "Entregas disponibles solo dentro del hostel. Por favor, proporcione el número de habitación correcto.",
		"paymentInfo":                "Información de Pago",
		"paymentInfoText":            "El pago se puede hacer en efectivo o tarjeta al momento de la entrega. También aceptamos pago en recepción.",
		"searchPlaceholder":          "Buscar productos y servicios...",
		"allCategories":              "Todas las Categorías",
		"noProducts":                 "No se encontraron productos",
		"quantity":                   "Cantidad",
		"orderCopied":                "Pedido copiado al portapapeles",
		"required":                   "requerido",
		"fillAllFields":              "Por favor, complete todos los campos requeridos",
		"ddi.+55":                    "Brasil",
		"ddi.+54":                    "Argentina",
		"ddi.+57":                    "Colombia",
		"ddi.+56":                    "Chile",
		"ddi.+51":                    "Perú",
		"ddi.+58":                    "Venezuela",
		"ddi.+593":                   "Ecuador",
		"ddi.+591":                   "Bolivia",
		"ddi.+595":                   "Paraguay",
		"ddi.+598":                   "Uruguay",
		"ddi.OTHER":                  "Otro",
		"admin.login":                "Login Admin",
		"admin.email":                "Correo Electrónico",
		"admin.password":             "Contraseña",
		"admin.loginButton":          "Iniciar Sesión",
		"admin.dashboard":            "Panel Admin",
		"admin.products":             "Productos",
		"admin.addProduct":           "Agregar Producto",
		"admin.editProduct":          "Editar Producto",
		"admin.active":               "Activo",
		"admin.featured":             "Destacado",
		"admin.type":                 "Tipo",
		"admin.product":              "Producto",
		"admin.service":              "Servicio",
		"admin.category":             "Categoría",
		"admin.price":                "Precio",
		"admin.image":                "Imagen",
		"admin.uploadImage":          "Subir Imagen",
		"admin.save":                 "Guardar",
		"admin.cancel":               "Cancelar",
		"admin.delete":               "Eliminar",
		"admin.logout":               "Salir",
		"admin.namePt":               "Nombre (PT)",
		"admin.nameEn":               "Nombre (EN)",
		"admin.nameEs":               "Nombre (ES)",
		"admin.descPt":               "Descripción (PT)",
		"admin.descEn":               "Descripción (EN)",
		"admin.descEs":               "Descripción (ES)",
		"admin.confirmDelete":        "¿Está seguro de que desea eliminar este elemento?",
		"admin.productSaved":         "Producto guardado exitosamente",
		"admin.productDeleted":       "Producto eliminado exitosamente",
		"admin.error":                "Error al procesar la solicitud",
	},
}
